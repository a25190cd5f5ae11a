package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stockledger/internal/domain"
	"stockledger/internal/service"
)

// StockHandler handles the three stock record collections and their derived
// views.
type StockHandler struct {
	stockService service.StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// recordInput is the create/update payload. Totals are always derived
// server-side; any client-sent totals are ignored.
type recordInput struct {
	PartyID            *uuid.UUID        `json:"partyId"`
	InvoiceNumber      string            `json:"invoiceNumber"`
	PartyInvoiceNumber string            `json:"partyInvoiceNumber"`
	Date               string            `json:"date" binding:"required"`
	Items              []domain.LineItem `json:"items" binding:"required"`
	CGSTPercent        domain.Amount     `json:"cgstPercent"`
	SGSTPercent        domain.Amount     `json:"sgstPercent"`
	IGSTPercent        domain.Amount     `json:"igstPercent"`
}

func (in *recordInput) apply(r *domain.StockRecord) {
	r.PartyID = in.PartyID
	r.InvoiceNumber = in.InvoiceNumber
	r.PartyInvoiceNumber = in.PartyInvoiceNumber
	r.Date = in.Date
	r.Items = in.Items
	r.CGSTPercent = in.CGSTPercent
	r.SGSTPercent = in.SGSTPercent
	r.IGSTPercent = in.IGSTPercent
}

func parseKind(c *gin.Context) (domain.RecordKind, bool) {
	kind, err := domain.ParseRecordKind(c.Param("kind"))
	if err != nil {
		HandleError(c, err)
		return "", false
	}
	return kind, true
}

// Create handles POST /api/v1/stock/:kind
// @Summary      Create a stock record
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        kind path string true "Record kind" Enums(opening, inward, outward)
// @Param        body body recordInput true "Record payload"
// @Success      201 {object} APIResponse{data=domain.StockRecord}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /stock/{kind} [post]
func (h *StockHandler) Create(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	var input recordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record := &domain.StockRecord{}
	input.apply(record)
	if err := h.stockService.CreateRecord(c.Request.Context(), kind, record); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// List handles GET /api/v1/stock/:kind?startDate=&endDate=
// @Summary      List stock records of a kind
// @Tags         stock
// @Produce      json
// @Param        kind path string true "Record kind" Enums(opening, inward, outward)
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=[]domain.StockRecord}
// @Security     BearerAuth
// @Router       /stock/{kind} [get]
func (h *StockHandler) List(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	records, err := h.stockService.ListRecords(c.Request.Context(), kind, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// GetByID handles GET /api/v1/stock/:kind/:id
// @Summary      Get a stock record
// @Tags         stock
// @Produce      json
// @Param        kind path string true "Record kind" Enums(opening, inward, outward)
// @Param        id path string true "Record UUID"
// @Success      200 {object} APIResponse{data=domain.StockRecord}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /stock/{kind}/{id} [get]
func (h *StockHandler) GetByID(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid record id")
		return
	}

	record, err := h.stockService.GetRecord(c.Request.Context(), kind, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// Update handles PUT /api/v1/stock/:kind/:id
// @Summary      Update a stock record
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        kind path string true "Record kind" Enums(opening, inward, outward)
// @Param        id path string true "Record UUID"
// @Param        body body recordInput true "Record payload"
// @Success      200 {object} APIResponse{data=domain.StockRecord}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /stock/{kind}/{id} [put]
func (h *StockHandler) Update(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid record id")
		return
	}

	var input recordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record := &domain.StockRecord{ID: id}
	input.apply(record)
	if err := h.stockService.UpdateRecord(c.Request.Context(), kind, record); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// Delete handles DELETE /api/v1/stock/:kind/:id
// @Summary      Delete a stock record
// @Tags         stock
// @Produce      json
// @Param        kind path string true "Record kind" Enums(opening, inward, outward)
// @Param        id path string true "Record UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /stock/{kind}/{id} [delete]
func (h *StockHandler) Delete(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid record id")
		return
	}

	if err := h.stockService.DeleteRecord(c.Request.Context(), kind, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "record deleted"})
}

// Summary handles GET /api/v1/stock/summary?startDate=&endDate=&partyName=&groupBy=
// @Summary      Stock summary
// @Description  Folds the opening, inward, and outward streams into per-item balances and valuations
// @Tags         stock
// @Produce      json
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Param        partyName query string false "Party name substring filter"
// @Param        groupBy query string false "Grouping key" Enums(item, hsn, none)
// @Success      200 {object} APIResponse{data=[]domain.StockSummary}
// @Security     BearerAuth
// @Router       /stock/summary [get]
func (h *StockHandler) Summary(c *gin.Context) {
	summaries, err := h.stockService.Summary(c.Request.Context(), service.SummaryQuery{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		PartyName: c.Query("partyName"),
		GroupBy:   domain.ParseGroupBy(c.Query("groupBy")),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summaries)
}

// Items handles GET /api/v1/stock/items
// @Summary      Unique items
// @Description  Lists distinct items observed across all record streams, with first-seen rates
// @Tags         stock
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.Item}
// @Security     BearerAuth
// @Router       /stock/items [get]
func (h *StockHandler) Items(c *gin.Context) {
	items, err := h.stockService.Items(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, items)
}
