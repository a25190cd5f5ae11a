package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
)

func record(kind domain.RecordKind, date string, items ...domain.LineItem) domain.StockRecord {
	return domain.StockRecord{
		ID:    uuid.New(),
		Kind:  kind,
		Date:  date,
		Items: items,
	}
}

func line(name string, qty, rate int64) domain.LineItem {
	return domain.LineItem{
		Name:     name,
		Quantity: domain.AmountFromInt(qty),
		Rate:     domain.AmountFromInt(rate),
	}
}

func TestSummarize_WeightedAverage(t *testing.T) {
	opening := []domain.StockRecord{record(domain.KindOpening, "2025-01-01", line("Widget", 100, 10))}
	inward := []domain.StockRecord{record(domain.KindInward, "2025-02-01", line("Widget", 50, 12))}
	outward := []domain.StockRecord{record(domain.KindOutward, "2025-03-01", line("Widget", 30, 20))}

	result := Summarize(opening, inward, outward, Filter{GroupBy: domain.GroupByItem})
	require.Len(t, result, 1)

	s := result[0]
	assert.Equal(t, "Widget", s.ItemName)
	assert.Equal(t, "100", s.OpeningStock.String())
	assert.Equal(t, "50", s.TotalInward.String())
	assert.Equal(t, "30", s.TotalOutward.String())
	assert.Equal(t, "120", s.CurrentBalance.String())

	// Only opening and inward feed the valuation.
	assert.Equal(t, "150", s.TotalQuantity.String())
	assert.Equal(t, "1600", s.TotalValue.String())
	assert.Equal(t, "10.667", s.AverageRate.StringFixed(3))
	assert.Equal(t, "1280.00", s.StockValue.StringFixed(2))
}

func TestSummarize_OrderIndependent(t *testing.T) {
	a := record(domain.KindInward, "2025-01-05", line("Bolt", 10, 5))
	b := record(domain.KindInward, "2025-01-01", line("Bolt", 20, 8))

	first := Summarize(nil, []domain.StockRecord{a, b}, nil, Filter{GroupBy: domain.GroupByItem})
	second := Summarize(nil, []domain.StockRecord{b, a}, nil, Filter{GroupBy: domain.GroupByItem})

	assert.Equal(t, first, second)
}

func TestSummarize_CaseInsensitiveBuckets(t *testing.T) {
	inward := []domain.StockRecord{
		record(domain.KindInward, "2025-01-01", line("Widget", 5, 10)),
		record(domain.KindInward, "2025-01-02", line("widget", 5, 10)),
		record(domain.KindInward, "2025-01-03", line("  Widget ", 5, 10)),
	}

	result := Summarize(nil, inward, nil, Filter{GroupBy: domain.GroupByItem})
	require.Len(t, result, 1)
	assert.Equal(t, "15", result[0].TotalInward.String())
	// First-seen spelling wins.
	assert.Equal(t, "Widget", result[0].ItemName)
}

func TestSummarize_NegativeBalance(t *testing.T) {
	outward := []domain.StockRecord{record(domain.KindOutward, "2025-01-01", line("Gadget", 10, 15))}

	result := Summarize(nil, nil, outward, Filter{GroupBy: domain.GroupByItem})
	require.Len(t, result, 1)

	s := result[0]
	assert.Equal(t, "-10", s.CurrentBalance.String())
	// No valuation stream touched the bucket: rate and value stay zero.
	assert.True(t, s.AverageRate.IsZero())
	assert.True(t, s.StockValue.IsZero())
}

func TestSummarize_DateFilter(t *testing.T) {
	inward := []domain.StockRecord{
		record(domain.KindInward, "2025-01-15", line("Nut", 10, 2)),
		record(domain.KindInward, "2025-03-15", line("Nut", 20, 2)),
	}

	result := Summarize(nil, inward, nil, Filter{
		DateStart: "2025-01-01",
		DateEnd:   "2025-01-31",
		GroupBy:   domain.GroupByItem,
	})
	require.Len(t, result, 1)
	assert.Equal(t, "10", result[0].TotalInward.String())
}

func TestSummarize_PartyFilter(t *testing.T) {
	partyA := uuid.New()
	partyB := uuid.New()

	withParty := func(r domain.StockRecord, id uuid.UUID) domain.StockRecord {
		r.PartyID = &id
		return r
	}

	inward := []domain.StockRecord{
		withParty(record(domain.KindInward, "2025-01-01", line("Pin", 10, 1)), partyA),
		withParty(record(domain.KindInward, "2025-01-02", line("Pin", 20, 1)), partyB),
		record(domain.KindInward, "2025-01-03", line("Pin", 40, 1)),
	}

	result := Summarize(nil, inward, nil, Filter{
		PartyIDs: map[uuid.UUID]struct{}{partyA: {}},
		GroupBy:  domain.GroupByItem,
	})
	require.Len(t, result, 1)
	assert.Equal(t, "10", result[0].TotalInward.String())

	// An empty, non-nil set matches nothing.
	empty := Summarize(nil, inward, nil, Filter{
		PartyIDs: map[uuid.UUID]struct{}{},
		GroupBy:  domain.GroupByItem,
	})
	assert.Empty(t, empty)

	// A nil set applies no party filter at all.
	all := Summarize(nil, inward, nil, Filter{GroupBy: domain.GroupByItem})
	require.Len(t, all, 1)
	assert.Equal(t, "70", all[0].TotalInward.String())
}

func TestSummarize_GroupModes(t *testing.T) {
	itemA := domain.LineItem{Name: "Rod", HSNCode: "7214", Quantity: domain.AmountFromInt(5), Rate: domain.AmountFromInt(3)}
	itemB := domain.LineItem{Name: "Bar", HSNCode: "7214", Quantity: domain.AmountFromInt(7), Rate: domain.AmountFromInt(4)}
	inward := []domain.StockRecord{record(domain.KindInward, "2025-01-01", itemA, itemB)}

	byItem := Summarize(nil, inward, nil, Filter{GroupBy: domain.GroupByItem})
	assert.Len(t, byItem, 2)

	byHSN := Summarize(nil, inward, nil, Filter{GroupBy: domain.GroupByHSN})
	require.Len(t, byHSN, 1)
	assert.Equal(t, "12", byHSN[0].TotalInward.String())
}

func TestSummarize_SortedByNameThenHSN(t *testing.T) {
	inward := []domain.StockRecord{
		record(domain.KindInward, "2025-01-01",
			domain.LineItem{Name: "zeta", HSNCode: "2", Quantity: domain.AmountFromInt(1), Rate: domain.AmountFromInt(1)},
			domain.LineItem{Name: "Alpha", HSNCode: "9", Quantity: domain.AmountFromInt(1), Rate: domain.AmountFromInt(1)},
			domain.LineItem{Name: "alpha", HSNCode: "1", Quantity: domain.AmountFromInt(1), Rate: domain.AmountFromInt(1)},
		),
	}

	result := Summarize(nil, inward, nil, Filter{GroupBy: domain.GroupByNone})
	require.Len(t, result, 3)
	assert.Equal(t, "1", result[0].HSNCode)
	assert.Equal(t, "9", result[1].HSNCode)
	assert.Equal(t, "zeta", result[2].ItemName)
}

func TestSummarize_ZeroQuantityValuation(t *testing.T) {
	// A zero-quantity line still creates its bucket without dividing by zero.
	inward := []domain.StockRecord{record(domain.KindInward, "2025-01-01", line("Ghost", 0, 100))}

	result := Summarize(nil, inward, nil, Filter{GroupBy: domain.GroupByItem})
	require.Len(t, result, 1)
	assert.True(t, result[0].AverageRate.IsZero())
	assert.True(t, result[0].StockValue.IsZero())
}

func TestSummarize_DecimalAccumulation(t *testing.T) {
	item := domain.LineItem{
		Name:     "Oil",
		Quantity: domain.AmountFromString("0.1"),
		Rate:     domain.AmountFromString("0.3"),
	}
	inward := make([]domain.StockRecord, 0, 10)
	for i := 0; i < 10; i++ {
		inward = append(inward, record(domain.KindInward, "2025-01-01", item))
	}

	result := Summarize(nil, inward, nil, Filter{GroupBy: domain.GroupByItem})
	require.Len(t, result, 1)
	assert.True(t, result[0].TotalQuantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, result[0].TotalValue.Equal(decimal.RequireFromString("0.3")))
}
