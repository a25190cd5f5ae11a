package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stockledger/internal/domain"
)

func TestWrite(t *testing.T) {
	summaries := []domain.StockSummary{
		{
			ItemName:       "Widget",
			HSNCode:        "8471",
			OpeningStock:   domain.AmountFromInt(100),
			TotalInward:    domain.AmountFromInt(50),
			TotalOutward:   domain.AmountFromInt(30),
			CurrentBalance: domain.AmountFromInt(120),
			AverageRate:    domain.AmountFromString("10.67"),
			StockValue:     domain.AmountFromString("1280.04"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, summaries))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Stock Summary")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Item Name", rows[0][0])
	assert.Equal(t, "Stock Value", rows[0][7])
	assert.Equal(t, "Widget", rows[1][0])
	assert.Equal(t, "8471", rows[1][1])
	assert.Equal(t, "120", rows[1][5])
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Stock Summary")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "stock-summary-2025-06-15.xlsx", BuildFilename(now))
}
