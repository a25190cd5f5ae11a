package port

import (
	"context"

	"stockledger/internal/domain"
)

// InvoiceCounterRepository issues sequence values per (type, scheme)
// namespace. Next must be atomic under concurrent callers and never return
// a value at or below seed, which carries the highest invoice number already
// present in the record collections.
type InvoiceCounterRepository interface {
	Next(ctx context.Context, invoiceType domain.InvoiceType, scheme domain.NumberingScheme, seed int64) (int64, error)
}
