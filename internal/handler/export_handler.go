package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockledger/internal/csvexport"
	"stockledger/internal/domain"
	"stockledger/internal/service"
	"stockledger/internal/xlsxexport"
)

// ExportHandler streams the stock summary as CSV or XLSX attachments.
type ExportHandler struct {
	stockService service.StockService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(stockService service.StockService) *ExportHandler {
	return &ExportHandler{stockService: stockService}
}

func (h *ExportHandler) summaries(c *gin.Context) ([]domain.StockSummary, bool) {
	summaries, err := h.stockService.Summary(c.Request.Context(), service.SummaryQuery{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		PartyName: c.Query("partyName"),
		GroupBy:   domain.ParseGroupBy(c.Query("groupBy")),
	})
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return summaries, true
}

// CSV handles GET /api/v1/export/csv
// @Summary      Export the stock summary as CSV
// @Tags         export
// @Produce      text/csv
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Param        partyName query string false "Party name substring filter"
// @Param        groupBy query string false "Grouping key" Enums(item, hsn, none)
// @Success      200 {string} string "CSV attachment"
// @Security     BearerAuth
// @Router       /export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	summaries, ok := h.summaries(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteSummaries(summaries); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+csvexport.BuildFilename(time.Now())+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// XLSX handles GET /api/v1/export/xlsx
// @Summary      Export the stock summary as an Excel workbook
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        startDate query string false "Start date (YYYY-MM-DD)"
// @Param        endDate query string false "End date (YYYY-MM-DD)"
// @Param        partyName query string false "Party name substring filter"
// @Param        groupBy query string false "Grouping key" Enums(item, hsn, none)
// @Success      200 {string} string "XLSX attachment"
// @Security     BearerAuth
// @Router       /export/xlsx [get]
func (h *ExportHandler) XLSX(c *gin.Context) {
	summaries, ok := h.summaries(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := xlsxexport.Write(&buf, summaries); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+xlsxexport.BuildFilename(time.Now())+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
