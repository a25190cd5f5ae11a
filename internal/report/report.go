// Package report builds ranking and trend views over raw stock records.
// Unlike the ledger fold, these views work on whole records, not summary
// buckets.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockledger/internal/domain"
	"stockledger/internal/ledger"
)

var hundred = decimal.NewFromInt(100)

// TopItems groups outward line items by (name, hsnCode), sums quantity and
// revenue (stored line totals), and returns the n highest-revenue items.
// Ties keep first-encountered order.
func TopItems(outward []domain.StockRecord, n int) []domain.ItemSales {
	index := make(map[string]int)
	items := make([]domain.ItemSales, 0)

	for i := range outward {
		for j := range outward[i].Items {
			item := &outward[i].Items[j]
			key := strings.ToUpper(strings.TrimSpace(item.Name)) + "_" + strings.TrimSpace(item.HSNCode)
			pos, ok := index[key]
			if !ok {
				pos = len(items)
				index[key] = pos
				items = append(items, domain.ItemSales{
					Name:    strings.TrimSpace(item.Name),
					HSNCode: strings.TrimSpace(item.HSNCode),
				})
			}
			items[pos].Quantity = domain.NewAmount(items[pos].Quantity.Add(item.Quantity.Decimal))
			items[pos].Revenue = domain.NewAmount(items[pos].Revenue.Add(item.Total.Decimal))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue.GreaterThan(items[j].Revenue.Decimal)
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// TopParties groups all records by party, sums grand totals and counts
// transactions, and returns the n highest by amount. A record whose party is
// missing from the directory lands in an "Unknown" bucket.
func TopParties(records []domain.StockRecord, parties map[uuid.UUID]domain.Party, n int) []domain.PartyStats {
	index := make(map[uuid.UUID]int)
	stats := make([]domain.PartyStats, 0)

	for i := range records {
		r := &records[i]
		id := uuid.Nil
		if r.PartyID != nil {
			id = *r.PartyID
		}
		pos, ok := index[id]
		if !ok {
			pos = len(stats)
			index[id] = pos
			entry := domain.PartyStats{Name: "Unknown", Type: "unknown"}
			if p, found := parties[id]; found {
				entry.Name = p.Name
				entry.Type = string(p.Type)
			}
			stats = append(stats, entry)
		}
		stats[pos].TotalAmount = domain.NewAmount(stats[pos].TotalAmount.Add(r.GrandTotal.Decimal))
		stats[pos].TransactionCount++
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalAmount.GreaterThan(stats[j].TotalAmount.Decimal)
	})
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// Summary computes the period totals. Purchases cover opening and inward
// records; sales cover outward. The margin is zero, not NaN, when there are
// no purchases.
func Summary(opening, inward, outward []domain.StockRecord) domain.AnalyticsSummary {
	purchases := sumGrandTotals(opening).Add(sumGrandTotals(inward))
	sales := sumGrandTotals(outward)
	profit := sales.Sub(purchases)

	margin := decimal.Decimal{}
	if purchases.IsPositive() {
		margin = profit.Div(purchases).Mul(hundred)
	}

	return domain.AnalyticsSummary{
		TotalPurchases:    domain.NewAmount(purchases),
		TotalSales:        domain.NewAmount(sales),
		TotalTransactions: len(opening) + len(inward) + len(outward),
		Profit:            domain.NewAmount(profit),
		ProfitMargin:      domain.NewAmount(margin),
	}
}

func sumGrandTotals(records []domain.StockRecord) decimal.Decimal {
	sum := decimal.Decimal{}
	for i := range records {
		sum = sum.Add(records[i].GrandTotal.Decimal)
	}
	return sum
}

// PeriodStart resolves a named period to its window start date relative to
// now. Explicit date ranges take precedence over periods at the call site.
func PeriodStart(p domain.Period, now time.Time, weekStart time.Weekday) string {
	switch p {
	case domain.PeriodDay:
		return now.Format(ledger.DateLayout)
	case domain.PeriodWeek:
		back := (int(now.Weekday()) - int(weekStart) + 7) % 7
		return now.AddDate(0, 0, -back).Format(ledger.DateLayout)
	case domain.PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()).Format(ledger.DateLayout)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(ledger.DateLayout)
	}
}

// MonthBounds returns the label and inclusive date bounds of the calendar
// month monthsAgo months before ref.
func MonthBounds(ref time.Time, monthsAgo int) (label, start, end string) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, -monthsAgo, 0)
	last := first.AddDate(0, 1, -1)
	return first.Format("Jan 2006"), first.Format(ledger.DateLayout), last.Format(ledger.DateLayout)
}
