package service

import (
	"context"

	"stockledger/internal/domain"
	"stockledger/internal/numbering"
	"stockledger/internal/port"
)

// NumberingService issues sequential invoice numbers per (type, scheme)
// namespace.
type NumberingService interface {
	NextNumber(ctx context.Context, invoiceType domain.InvoiceType, scheme domain.NumberingScheme) (string, error)
}

type numberingService struct {
	records  port.StockRecordRepository
	counters port.InvoiceCounterRepository
}

// NewNumberingService creates a new NumberingService.
func NewNumberingService(records port.StockRecordRepository, counters port.InvoiceCounterRepository) NumberingService {
	return &numberingService{records: records, counters: counters}
}

// NextNumber scans existing numbers for the namespace's highest suffix and
// bumps the persistent counter past it. Purchase numbers live in opening
// records' own invoice numbers and inward records' counterparty invoice
// numbers; sales numbers live in outward records' own invoice numbers.
func (s *numberingService) NextNumber(ctx context.Context, invoiceType domain.InvoiceType, scheme domain.NumberingScheme) (string, error) {
	candidates, err := s.existingNumbers(ctx, invoiceType)
	if err != nil {
		return "", err
	}

	prefix := numbering.Prefix(invoiceType, scheme)
	seed := numbering.MaxSuffix(candidates, prefix)

	next, err := s.counters.Next(ctx, invoiceType, scheme, seed)
	if err != nil {
		return "", err
	}
	return numbering.Format(prefix, next), nil
}

func (s *numberingService) existingNumbers(ctx context.Context, invoiceType domain.InvoiceType) ([]string, error) {
	if invoiceType == domain.InvoiceSales {
		return s.records.InvoiceNumbers(ctx, domain.KindOutward)
	}
	own, err := s.records.InvoiceNumbers(ctx, domain.KindOpening)
	if err != nil {
		return nil, err
	}
	party, err := s.records.PartyInvoiceNumbers(ctx, domain.KindInward)
	if err != nil {
		return nil, err
	}
	return append(own, party...), nil
}
