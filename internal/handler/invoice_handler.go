package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stockledger/internal/domain"
	"stockledger/internal/service"
)

// InvoiceHandler serves invoice numbering and invoice resolution.
type InvoiceHandler struct {
	numberingService service.NumberingService
	stockService     service.StockService
	// scheme is the configured namespace for /invoice/next-number. The
	// legacy /stock/next-invoice endpoint is pinned to the long scheme.
	scheme domain.NumberingScheme
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(numberingService service.NumberingService, stockService service.StockService, scheme domain.NumberingScheme) *InvoiceHandler {
	return &InvoiceHandler{numberingService: numberingService, stockService: stockService, scheme: scheme}
}

// NextNumber handles GET /api/v1/invoice/next-number?type=
// @Summary      Next invoice number
// @Tags         invoices
// @Produce      json
// @Param        type query string false "Invoice type" Enums(purchase, sales) default(purchase)
// @Success      200 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoice/next-number [get]
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	h.issue(c, h.scheme)
}

// NextInvoice handles GET /api/v1/stock/next-invoice?type=
// @Summary      Next invoice number (long prefixes)
// @Tags         invoices
// @Produce      json
// @Param        type query string false "Invoice type" Enums(purchase, sales) default(purchase)
// @Success      200 {object} APIResponse
// @Security     BearerAuth
// @Router       /stock/next-invoice [get]
func (h *InvoiceHandler) NextInvoice(c *gin.Context) {
	h.issue(c, domain.SchemeLong)
}

func (h *InvoiceHandler) issue(c *gin.Context, scheme domain.NumberingScheme) {
	invoiceType := domain.ParseInvoiceType(c.Query("type"))
	number, err := h.numberingService.NextNumber(c.Request.Context(), invoiceType, scheme)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"invoiceNumber": number})
}

// GetByID handles GET /api/v1/invoice/:id
// @Summary      Resolve an invoice
// @Description  Returns a record with its party, the payload an external renderer consumes
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Record UUID"
// @Success      200 {object} APIResponse{data=domain.Invoice}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoice/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid record id")
		return
	}

	invoice, err := h.stockService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}
