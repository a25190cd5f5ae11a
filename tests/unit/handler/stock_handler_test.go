package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
	"stockledger/internal/handler"
	"stockledger/internal/service"
	"stockledger/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newStockHandler() (*handler.StockHandler, *mocks.MockStockService) {
	mockSvc := new(mocks.MockStockService)
	return handler.NewStockHandler(mockSvc), mockSvc
}

func TestStockHandler_Summary(t *testing.T) {
	h, mockSvc := newStockHandler()

	expected := []domain.StockSummary{{ItemName: "Widget", CurrentBalance: domain.AmountFromInt(120)}}
	mockSvc.On("Summary", mock.Anything, service.SummaryQuery{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
		GroupBy:   domain.GroupByItem,
	}).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/v1/stock/summary?startDate=2025-01-01&endDate=2025-01-31&groupBy=item", http.NoBody)

	h.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestStockHandler_Create_InvalidKind(t *testing.T) {
	h, mockSvc := newStockHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "kind", Value: "sideways"}}
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/stock/sideways",
		strings.NewReader(`{"date":"2025-01-01","items":[]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_RECORD_KIND", resp.Error.Code)
	mockSvc.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything, mock.Anything)
}

func TestStockHandler_Create_LenientAmounts(t *testing.T) {
	h, mockSvc := newStockHandler()

	mockSvc.On("CreateRecord", mock.Anything, domain.KindInward, mock.MatchedBy(func(r *domain.StockRecord) bool {
		// "abc" coerces to zero instead of failing the request.
		return len(r.Items) == 1 &&
			r.Items[0].Quantity.String() == "10" &&
			r.Items[0].Rate.IsZero()
	})).Return(nil)

	body := `{"date":"2025-01-01","items":[{"name":"Widget","quantity":"10","rate":"abc"}]}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "kind", Value: "inward"}}
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/stock/inward", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_NextNumber(t *testing.T) {
	numbering := new(mocks.MockNumberingService)
	stock := new(mocks.MockStockService)
	h := handler.NewInvoiceHandler(numbering, stock, domain.SchemeShort)

	numbering.On("NextNumber", mock.Anything, domain.InvoicePurchase, domain.SchemeShort).
		Return("PI0048", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoice/next-number?type=purchase", http.NoBody)

	h.NextNumber(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PI0048")
	numbering.AssertExpectations(t)
}

func TestInvoiceHandler_NextInvoice_UsesLongScheme(t *testing.T) {
	numbering := new(mocks.MockNumberingService)
	stock := new(mocks.MockStockService)
	h := handler.NewInvoiceHandler(numbering, stock, domain.SchemeShort)

	numbering.On("NextNumber", mock.Anything, domain.InvoiceSales, domain.SchemeLong).
		Return("SAL0001", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/stock/next-invoice?type=sales", http.NoBody)

	h.NextInvoice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SAL0001")
	numbering.AssertExpectations(t)
}
