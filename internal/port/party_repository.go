package port

import (
	"context"

	"github.com/google/uuid"

	"stockledger/internal/domain"
)

// PartyRepository persists counterparties.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error)
	// List returns parties of the given type, or all parties when
	// partyType is empty.
	List(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error)
	// SearchByName returns parties whose name contains pattern,
	// case-insensitively.
	SearchByName(ctx context.Context, pattern string) ([]domain.Party, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, id uuid.UUID) error
}
