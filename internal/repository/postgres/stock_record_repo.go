package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockledger/internal/domain"
	"stockledger/internal/port"
)

type stockRecordRepo struct {
	db *sqlx.DB
}

// NewStockRecordRepo creates a new PostgreSQL-backed StockRecordRepository.
func NewStockRecordRepo(db *sqlx.DB) port.StockRecordRepository {
	return &stockRecordRepo{db: db}
}

func (r *stockRecordRepo) Create(ctx context.Context, record *domain.StockRecord) error {
	record.ID = uuid.New()
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	query := `INSERT INTO stock_records
		(id, kind, party_id, invoice_number, party_invoice_number, record_date,
		 items, subtotal, cgst_percent, sgst_percent, igst_percent, grand_total,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Kind, record.PartyID, record.InvoiceNumber,
		record.PartyInvoiceNumber, record.Date, record.Items, record.Subtotal,
		record.CGSTPercent, record.SGSTPercent, record.IGSTPercent,
		record.GrandTotal, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("stockRecordRepo.Create: %w", err)
	}
	return nil
}

func (r *stockRecordRepo) GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.StockRecord, error) {
	var record domain.StockRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM stock_records WHERE kind = $1 AND id = $2", kind, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stockRecordRepo.GetByID: %w", err)
	}
	return &record, nil
}

func (r *stockRecordRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.StockRecord, error) {
	var record domain.StockRecord
	err := r.db.GetContext(ctx, &record, "SELECT * FROM stock_records WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stockRecordRepo.FindByID: %w", err)
	}
	return &record, nil
}

func (r *stockRecordRepo) List(ctx context.Context, kind domain.RecordKind, start, end string) ([]domain.StockRecord, error) {
	query := "SELECT * FROM stock_records WHERE kind = $1"
	args := []interface{}{kind}
	if start != "" {
		args = append(args, start)
		query += fmt.Sprintf(" AND record_date >= $%d", len(args))
	}
	if end != "" {
		args = append(args, end)
		query += fmt.Sprintf(" AND record_date <= $%d", len(args))
	}
	query += " ORDER BY record_date, created_at"

	records := []domain.StockRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("stockRecordRepo.List: %w", err)
	}
	return records, nil
}

func (r *stockRecordRepo) Update(ctx context.Context, record *domain.StockRecord) error {
	record.UpdatedAt = time.Now().UTC()
	query := `UPDATE stock_records SET
		party_id = $1, invoice_number = $2, party_invoice_number = $3,
		record_date = $4, items = $5, subtotal = $6, cgst_percent = $7,
		sgst_percent = $8, igst_percent = $9, grand_total = $10, updated_at = $11
		WHERE kind = $12 AND id = $13`
	result, err := r.db.ExecContext(ctx, query,
		record.PartyID, record.InvoiceNumber, record.PartyInvoiceNumber,
		record.Date, record.Items, record.Subtotal, record.CGSTPercent,
		record.SGSTPercent, record.IGSTPercent, record.GrandTotal,
		record.UpdatedAt, record.Kind, record.ID)
	if err != nil {
		return fmt.Errorf("stockRecordRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stockRecordRepo) Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM stock_records WHERE kind = $1 AND id = $2", kind, id)
	if err != nil {
		return fmt.Errorf("stockRecordRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stockRecordRepo) InvoiceNumbers(ctx context.Context, kind domain.RecordKind) ([]string, error) {
	numbers := []string{}
	err := r.db.SelectContext(ctx, &numbers,
		"SELECT invoice_number FROM stock_records WHERE kind = $1 AND invoice_number <> ''", kind)
	if err != nil {
		return nil, fmt.Errorf("stockRecordRepo.InvoiceNumbers: %w", err)
	}
	return numbers, nil
}

func (r *stockRecordRepo) PartyInvoiceNumbers(ctx context.Context, kind domain.RecordKind) ([]string, error) {
	numbers := []string{}
	err := r.db.SelectContext(ctx, &numbers,
		"SELECT party_invoice_number FROM stock_records WHERE kind = $1 AND party_invoice_number <> ''", kind)
	if err != nil {
		return nil, fmt.Errorf("stockRecordRepo.PartyInvoiceNumbers: %w", err)
	}
	return numbers, nil
}
