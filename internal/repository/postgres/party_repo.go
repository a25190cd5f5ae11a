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

type partyRepo struct {
	db *sqlx.DB
}

// NewPartyRepo creates a new PostgreSQL-backed PartyRepository.
func NewPartyRepo(db *sqlx.DB) port.PartyRepository {
	return &partyRepo{db: db}
}

func (r *partyRepo) Create(ctx context.Context, party *domain.Party) error {
	party.ID = uuid.New()
	now := time.Now().UTC()
	party.CreatedAt = now
	party.UpdatedAt = now

	query := `INSERT INTO parties (id, name, address, contact, email, gst_number, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		party.ID, party.Name, party.Address, party.Contact, party.Email,
		party.GSTNumber, party.Type, party.CreatedAt, party.UpdatedAt)
	if err != nil {
		return fmt.Errorf("partyRepo.Create: %w", err)
	}
	return nil
}

func (r *partyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	var party domain.Party
	err := r.db.GetContext(ctx, &party, "SELECT * FROM parties WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("partyRepo.GetByID: %w", err)
	}
	return &party, nil
}

func (r *partyRepo) List(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	parties := []domain.Party{}
	var err error
	if partyType == "" {
		err = r.db.SelectContext(ctx, &parties, "SELECT * FROM parties ORDER BY name")
	} else {
		err = r.db.SelectContext(ctx, &parties, "SELECT * FROM parties WHERE type = $1 ORDER BY name", partyType)
	}
	if err != nil {
		return nil, fmt.Errorf("partyRepo.List: %w", err)
	}
	return parties, nil
}

func (r *partyRepo) SearchByName(ctx context.Context, pattern string) ([]domain.Party, error) {
	parties := []domain.Party{}
	err := r.db.SelectContext(ctx, &parties,
		"SELECT * FROM parties WHERE name ILIKE '%' || $1 || '%' ORDER BY name", pattern)
	if err != nil {
		return nil, fmt.Errorf("partyRepo.SearchByName: %w", err)
	}
	return parties, nil
}

func (r *partyRepo) Update(ctx context.Context, party *domain.Party) error {
	party.UpdatedAt = time.Now().UTC()
	query := `UPDATE parties SET name = $1, address = $2, contact = $3, email = $4,
		gst_number = $5, type = $6, updated_at = $7 WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		party.Name, party.Address, party.Contact, party.Email,
		party.GSTNumber, party.Type, party.UpdatedAt, party.ID)
	if err != nil {
		return fmt.Errorf("partyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *partyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM parties WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("partyRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
