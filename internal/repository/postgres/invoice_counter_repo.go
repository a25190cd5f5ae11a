package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stockledger/internal/domain"
	"stockledger/internal/port"
)

type invoiceCounterRepo struct {
	db *sqlx.DB
}

// NewInvoiceCounterRepo creates a new PostgreSQL-backed
// InvoiceCounterRepository.
func NewInvoiceCounterRepo(db *sqlx.DB) port.InvoiceCounterRepository {
	return &invoiceCounterRepo{db: db}
}

// Next bumps the (type, scheme) counter in a single atomic statement.
// The seed carries the highest suffix found among existing invoice numbers,
// so manually entered numbers never collide with issued ones and the counter
// self-initializes on first use.
func (r *invoiceCounterRepo) Next(ctx context.Context, invoiceType domain.InvoiceType, scheme domain.NumberingScheme, seed int64) (int64, error) {
	query := `INSERT INTO invoice_counters (record_type, scheme, last_value)
		VALUES ($1, $2, $3 + 1)
		ON CONFLICT (record_type, scheme)
		DO UPDATE SET last_value = GREATEST(invoice_counters.last_value, $3) + 1
		RETURNING last_value`

	var next int64
	if err := r.db.GetContext(ctx, &next, query, invoiceType, scheme, seed); err != nil {
		return 0, fmt.Errorf("invoiceCounterRepo.Next: %w", err)
	}
	return next, nil
}
