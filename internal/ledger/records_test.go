package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
)

func TestFilterRecords_Dimensions(t *testing.T) {
	party := uuid.New()
	other := uuid.New()

	records := []domain.StockRecord{
		{Date: "2025-01-10", PartyID: &party, GrandTotal: domain.AmountFromInt(100),
			Items: domain.LineItems{{Name: "Steel Rod"}}},
		{Date: "2025-02-10", PartyID: &other, GrandTotal: domain.AmountFromInt(500),
			Items: domain.LineItems{{Name: "Copper Wire"}}},
		{Date: "2025-03-10", GrandTotal: domain.AmountFromInt(900),
			Items: domain.LineItems{{Name: "steel plate"}}},
	}

	byParty := FilterRecords(records, RecordFilter{PartyID: &party})
	require.Len(t, byParty, 1)
	assert.Equal(t, "2025-01-10", byParty[0].Date)

	byItem := FilterRecords(records, RecordFilter{ItemName: "STEEL"})
	assert.Len(t, byItem, 2)

	min := decimal.NewFromInt(400)
	max := decimal.NewFromInt(600)
	byAmount := FilterRecords(records, RecordFilter{MinAmount: &min, MaxAmount: &max})
	require.Len(t, byAmount, 1)
	assert.Equal(t, "2025-02-10", byAmount[0].Date)

	byDate := FilterRecords(records, RecordFilter{DateStart: "2025-02-01", DateEnd: "2025-03-31"})
	assert.Len(t, byDate, 2)
}

func TestFilterRecords_Conjunctive(t *testing.T) {
	party := uuid.New()
	records := []domain.StockRecord{
		{Date: "2025-01-10", PartyID: &party, GrandTotal: domain.AmountFromInt(100),
			Items: domain.LineItems{{Name: "Rod"}}},
		{Date: "2025-06-10", PartyID: &party, GrandTotal: domain.AmountFromInt(100),
			Items: domain.LineItems{{Name: "Rod"}}},
	}

	result := FilterRecords(records, RecordFilter{
		PartyID:   &party,
		DateStart: "2025-05-01",
		ItemName:  "rod",
	})
	require.Len(t, result, 1)
	assert.Equal(t, "2025-06-10", result[0].Date)
}

func TestFilterRecords_NewestFirst(t *testing.T) {
	records := []domain.StockRecord{
		{Date: "2025-01-01", InvoiceNumber: "A"},
		{Date: "2025-03-01", InvoiceNumber: "B"},
		{Date: "2025-02-01", InvoiceNumber: "C"},
		{Date: "2025-03-01", InvoiceNumber: "D"},
	}

	result := FilterRecords(records, RecordFilter{})
	require.Len(t, result, 4)
	// Newest first; equal dates keep input order.
	assert.Equal(t, "B", result[0].InvoiceNumber)
	assert.Equal(t, "D", result[1].InvoiceNumber)
	assert.Equal(t, "C", result[2].InvoiceNumber)
	assert.Equal(t, "A", result[3].InvoiceNumber)
}
