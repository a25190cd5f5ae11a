package ledger

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockledger/internal/domain"
)

// RecordFilter is the multi-dimensional predicate for the cross-kind record
// listing. All set dimensions apply conjunctively.
type RecordFilter struct {
	PartyID   *uuid.UUID
	DateStart string
	DateEnd   string
	ItemName  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Matches applies every configured dimension to a record.
func (f *RecordFilter) Matches(r *domain.StockRecord) bool {
	if f.PartyID != nil {
		if r.PartyID == nil || *r.PartyID != *f.PartyID {
			return false
		}
	}
	if !InRange(r.Date, f.DateStart, f.DateEnd) {
		return false
	}
	if f.ItemName != "" {
		needle := strings.ToLower(f.ItemName)
		found := false
		for i := range r.Items {
			if strings.Contains(strings.ToLower(r.Items[i].Name), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinAmount != nil && r.GrandTotal.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && r.GrandTotal.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

// FilterRecords keeps the records matching f, sorted newest first by parsed
// date. Records with equal dates keep their relative input order.
func FilterRecords(records []domain.StockRecord, f RecordFilter) []domain.StockRecord {
	out := make([]domain.StockRecord, 0, len(records))
	for i := range records {
		if f.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, _ := ParseDate(out[i].Date)
		dj, _ := ParseDate(out[j].Date)
		return di.After(dj)
	})
	return out
}
