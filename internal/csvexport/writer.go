// Package csvexport renders stock summaries as a CSV attachment.
package csvexport

import (
	"encoding/csv"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"stockledger/internal/domain"
	"stockledger/internal/ledger"
)

// BOM is the UTF-8 byte order mark, prepended for Excel compatibility on
// Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row. The order is fixed; external
// spreadsheets key on it.
var columns = []string{
	"Item Name",
	"HSN Code",
	"Opening Stock",
	"Total Inward",
	"Total Outward",
	"Current Balance",
	"Average Rate",
	"Stock Value",
}

// Writer wraps csv.Writer for exporting stock summaries.
type Writer struct {
	csv     *csv.Writer
	printer *message.Printer
}

// NewWriter creates a Writer that writes CSV to w. Numeric cells use English
// digit grouping, so values above a thousand come out quoted.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		csv:     csv.NewWriter(w),
		printer: message.NewPrinter(language.English),
	}
}

// WriteHeader writes the fixed header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteSummaries converts summary buckets to CSV rows and writes them.
func (w *Writer) WriteSummaries(summaries []domain.StockSummary) error {
	for i := range summaries {
		if err := w.csv.Write(w.summaryToRow(&summaries[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func (w *Writer) summaryToRow(s *domain.StockSummary) []string {
	return []string{
		s.ItemName,
		s.HSNCode,
		w.formatQuantity(s.OpeningStock),
		w.formatQuantity(s.TotalInward),
		w.formatQuantity(s.TotalOutward),
		w.formatQuantity(s.CurrentBalance),
		w.formatMoney(s.AverageRate),
		w.formatMoney(s.StockValue),
	}
}

// formatQuantity groups digits without forcing decimals on whole counts.
func (w *Writer) formatQuantity(a domain.Amount) string {
	f, _ := a.Float64()
	if a.IsInteger() {
		return w.printer.Sprintf("%d", a.IntPart())
	}
	return w.printer.Sprintf("%.2f", f)
}

// formatMoney always renders two decimal places.
func (w *Writer) formatMoney(a domain.Amount) string {
	f, _ := a.Float64()
	return w.printer.Sprintf("%.2f", f)
}

// BuildFilename derives the attachment name for an export generated now.
func BuildFilename(now time.Time) string {
	return "stock-summary-" + now.Format(ledger.DateLayout) + ".csv"
}
