package service

import (
	"context"

	"stockledger/internal/domain"
	"stockledger/internal/ledger"
	"stockledger/internal/port"
)

// RecordService serves the cross-kind filtered record listing.
type RecordService interface {
	// List returns records matching f, newest first. An empty kind spans all
	// three collections.
	List(ctx context.Context, kind domain.RecordKind, f ledger.RecordFilter) ([]domain.StockRecord, error)
}

type recordService struct {
	records port.StockRecordRepository
}

// NewRecordService creates a new RecordService.
func NewRecordService(records port.StockRecordRepository) RecordService {
	return &recordService{records: records}
}

func (s *recordService) List(ctx context.Context, kind domain.RecordKind, f ledger.RecordFilter) ([]domain.StockRecord, error) {
	kinds := domain.AllRecordKinds
	if kind != "" {
		kinds = []domain.RecordKind{kind}
	}

	all := make([]domain.StockRecord, 0)
	for _, k := range kinds {
		records, err := s.records.List(ctx, k, f.DateStart, f.DateEnd)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return ledger.FilterRecords(all, f), nil
}
