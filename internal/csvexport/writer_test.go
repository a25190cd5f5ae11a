package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Item Name", "HSN Code", "Opening Stock", "Total Inward",
		"Total Outward", "Current Balance", "Average Rate", "Stock Value",
	}, row)
}

func TestWriteSummaries(t *testing.T) {
	summaries := []domain.StockSummary{
		{
			ItemName:       "Widget",
			HSNCode:        "8471",
			OpeningStock:   domain.AmountFromInt(100),
			TotalInward:    domain.AmountFromInt(50),
			TotalOutward:   domain.AmountFromInt(30),
			CurrentBalance: domain.AmountFromInt(120),
			AverageRate:    domain.AmountFromString("10.6667"),
			StockValue:     domain.AmountFromString("1280.04"),
		},
		{
			ItemName:       "Gadget",
			HSNCode:        "8473",
			OpeningStock:   domain.AmountFromInt(2000),
			CurrentBalance: domain.AmountFromInt(2000),
			AverageRate:    domain.AmountFromInt(5),
			StockValue:     domain.AmountFromInt(10000),
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteSummaries(summaries))
	w.Flush()
	require.NoError(t, w.Error())

	// Header plus one line per bucket.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)

	r := csv.NewReader(strings.NewReader(buf.String()))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Widget", rows[1][0])
	assert.Equal(t, "120", rows[1][5])
	assert.Equal(t, "10.67", rows[1][6])
	assert.Equal(t, "1,280.04", rows[1][7])

	// Digit grouping on large quantities and values.
	assert.Equal(t, "2,000", rows[2][2])
	assert.Equal(t, "10,000.00", rows[2][7])
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "stock-summary-2025-06-15.csv", BuildFilename(now))
}
