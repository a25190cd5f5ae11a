// Package xlsxexport renders stock summaries as an Excel workbook.
package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"stockledger/internal/domain"
	"stockledger/internal/ledger"
)

const sheetName = "Stock Summary"

// columns mirrors the CSV export header so both attachments line up.
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

// Write renders summaries as a single-sheet workbook and streams it to w.
// Numeric cells carry real numbers so spreadsheet formulas keep working.
func Write(w io.Writer, summaries []domain.StockSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("xlsxexport: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("xlsxexport: write header: %w", err)
		}
	}

	for i := range summaries {
		if err := writeRow(f, i+2, &summaries[i]); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, s *domain.StockSummary) error {
	values := []interface{}{
		s.ItemName,
		s.HSNCode,
		cellNumber(s.OpeningStock),
		cellNumber(s.TotalInward),
		cellNumber(s.TotalOutward),
		cellNumber(s.CurrentBalance),
		cellNumber(s.AverageRate),
		cellNumber(s.StockValue),
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("xlsxexport: data cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("xlsxexport: write row %d: %w", row, err)
		}
	}
	return nil
}

func cellNumber(a domain.Amount) float64 {
	f, _ := a.Float64()
	return f
}

// BuildFilename derives the attachment name for an export generated now.
func BuildFilename(now time.Time) string {
	return "stock-summary-" + now.Format(ledger.DateLayout) + ".xlsx"
}
