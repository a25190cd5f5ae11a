package port

import (
	"context"

	"github.com/google/uuid"

	"stockledger/internal/domain"
)

// StockRecordRepository persists the three stock record collections.
type StockRecordRepository interface {
	Create(ctx context.Context, record *domain.StockRecord) error
	GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.StockRecord, error)
	// FindByID looks a record up across all three kinds.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.StockRecord, error)
	// List returns records of a kind within [start, end]; empty bounds are
	// unbounded.
	List(ctx context.Context, kind domain.RecordKind, start, end string) ([]domain.StockRecord, error)
	Update(ctx context.Context, record *domain.StockRecord) error
	Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error
	// InvoiceNumbers returns the non-empty own invoice numbers of a kind.
	InvoiceNumbers(ctx context.Context, kind domain.RecordKind) ([]string, error)
	// PartyInvoiceNumbers returns the non-empty counterparty invoice
	// numbers of a kind.
	PartyInvoiceNumbers(ctx context.Context, kind domain.RecordKind) ([]string, error)
}
