package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockledger/internal/domain"
	"stockledger/internal/ledger"
	"stockledger/internal/service"
)

// RecordHandler serves the cross-kind filtered record listing.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// List handles GET /api/v1/records?type=&partyId=&startDate=&endDate=&itemName=&minAmount=&maxAmount=
// @Summary      List records across all kinds
// @Description  Multi-dimensional filter over every record collection, newest first
// @Tags         records
// @Produce      json
// @Param        type query string false "Record kind" Enums(opening, inward, outward)
// @Param        partyId query string false "Party UUID"
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Param        itemName query string false "Item name substring"
// @Param        minAmount query number false "Minimum grand total"
// @Param        maxAmount query number false "Maximum grand total"
// @Success      200 {object} APIResponse{data=[]domain.StockRecord}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	var kind domain.RecordKind
	if t := c.Query("type"); t != "" {
		parsed, err := domain.ParseRecordKind(t)
		if err != nil {
			HandleError(c, err)
			return
		}
		kind = parsed
	}

	filter := ledger.RecordFilter{
		DateStart: c.Query("startDate"),
		DateEnd:   c.Query("endDate"),
		ItemName:  c.Query("itemName"),
	}

	if pid := c.Query("partyId"); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid partyId")
			return
		}
		filter.PartyID = &id
	}
	if min := c.Query("minAmount"); min != "" {
		if d, err := decimal.NewFromString(min); err == nil {
			filter.MinAmount = &d
		}
	}
	if max := c.Query("maxAmount"); max != "" {
		if d, err := decimal.NewFromString(max); err == nil {
			filter.MaxAmount = &d
		}
	}

	records, err := h.recordService.List(c.Request.Context(), kind, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}
