package service

import (
	"context"

	"github.com/google/uuid"

	"stockledger/internal/domain"
	"stockledger/internal/port"
)

// PartyService manages the counterparty directory.
type PartyService interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error)
	List(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type partyService struct {
	parties port.PartyRepository
}

// NewPartyService creates a new PartyService.
func NewPartyService(parties port.PartyRepository) PartyService {
	return &partyService{parties: parties}
}

func (s *partyService) Create(ctx context.Context, party *domain.Party) error {
	return s.parties.Create(ctx, party)
}

func (s *partyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	return s.parties.GetByID(ctx, id)
}

func (s *partyService) List(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	return s.parties.List(ctx, partyType)
}

func (s *partyService) Update(ctx context.Context, party *domain.Party) error {
	return s.parties.Update(ctx, party)
}

func (s *partyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.parties.Delete(ctx, id)
}
