// Package ledger folds the three raw stock record streams into per-key
// summaries. The fold is commutative and associative: permuting records
// within or across streams yields identical output.
package ledger

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockledger/internal/domain"
)

// Filter narrows the records that participate in a summary. A nil PartyIDs
// set means no party filter; an empty set matches nothing.
type Filter struct {
	DateStart string
	DateEnd   string
	PartyIDs  map[uuid.UUID]struct{}
	GroupBy   domain.GroupBy
}

func (f *Filter) matches(r *domain.StockRecord) bool {
	if !InRange(r.Date, f.DateStart, f.DateEnd) {
		return false
	}
	if f.PartyIDs != nil {
		if r.PartyID == nil {
			return false
		}
		if _, ok := f.PartyIDs[*r.PartyID]; !ok {
			return false
		}
	}
	return true
}

// GroupKey derives the summary bucket key for a line item. Names are
// compared case-insensitively so "Widget" and "widget" share a bucket.
func GroupKey(item *domain.LineItem, mode domain.GroupBy) string {
	name := strings.ToUpper(strings.TrimSpace(item.Name))
	switch mode {
	case domain.GroupByItem:
		return name
	case domain.GroupByHSN:
		return strings.TrimSpace(item.HSNCode)
	default:
		return name + "_" + strings.TrimSpace(item.HSNCode) + "_" + strings.TrimSpace(item.Description)
	}
}

type bucket struct {
	itemName string
	hsnCode  string
	opening  decimal.Decimal
	inward   decimal.Decimal
	outward  decimal.Decimal
	value    decimal.Decimal
	quantity decimal.Decimal
}

// Summarize folds the filtered streams into one StockSummary per grouping
// key. Opening and inward quantities feed the weighted-average valuation;
// outward quantities only reduce the balance. Buckets whose movements all
// net to zero still appear if any line item touched them. The result is
// sorted by item name then HSN code.
func Summarize(opening, inward, outward []domain.StockRecord, f Filter) []domain.StockSummary {
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	fold := func(records []domain.StockRecord, kind domain.RecordKind) {
		for i := range records {
			r := &records[i]
			if !f.matches(r) {
				continue
			}
			for j := range r.Items {
				item := &r.Items[j]
				key := GroupKey(item, f.GroupBy)
				b := buckets[key]
				if b == nil {
					b = &bucket{
						itemName: strings.TrimSpace(item.Name),
						hsnCode:  strings.TrimSpace(item.HSNCode),
					}
					buckets[key] = b
					order = append(order, key)
				}
				qty := item.Quantity.Decimal
				switch kind {
				case domain.KindOpening:
					b.opening = b.opening.Add(qty)
				case domain.KindInward:
					b.inward = b.inward.Add(qty)
				case domain.KindOutward:
					b.outward = b.outward.Add(qty)
				}
				if kind.ContributesToValuation() {
					b.value = b.value.Add(qty.Mul(item.Rate.Decimal))
					b.quantity = b.quantity.Add(qty)
				}
			}
		}
	}

	fold(opening, domain.KindOpening)
	fold(inward, domain.KindInward)
	fold(outward, domain.KindOutward)

	result := make([]domain.StockSummary, 0, len(buckets))
	for _, key := range order {
		b := buckets[key]
		balance := b.opening.Add(b.inward).Sub(b.outward)
		avgRate := decimal.Decimal{}
		if b.quantity.IsPositive() {
			avgRate = b.value.Div(b.quantity)
		}
		result = append(result, domain.StockSummary{
			ItemName:       b.itemName,
			HSNCode:        b.hsnCode,
			OpeningStock:   domain.NewAmount(b.opening),
			TotalInward:    domain.NewAmount(b.inward),
			TotalOutward:   domain.NewAmount(b.outward),
			TotalValue:     domain.NewAmount(b.value),
			TotalQuantity:  domain.NewAmount(b.quantity),
			CurrentBalance: domain.NewAmount(balance),
			AverageRate:    domain.NewAmount(avgRate),
			StockValue:     domain.NewAmount(balance.Mul(avgRate)),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		an, bn := strings.ToUpper(a.ItemName), strings.ToUpper(b.ItemName)
		if an != bn {
			return an < bn
		}
		return a.HSNCode < b.HSNCode
	})
	return result
}
