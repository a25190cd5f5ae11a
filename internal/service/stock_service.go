package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"stockledger/internal/domain"
	"stockledger/internal/ledger"
	"stockledger/internal/port"
)

// SummaryQuery narrows the stock summary. PartyName selects every party whose
// name contains it, case-insensitively; a name that matches no party yields an
// empty summary rather than an unfiltered one.
type SummaryQuery struct {
	StartDate string
	EndDate   string
	PartyName string
	GroupBy   domain.GroupBy
}

// StockService manages the three record collections and the derived views
// over them.
type StockService interface {
	CreateRecord(ctx context.Context, kind domain.RecordKind, record *domain.StockRecord) error
	GetRecord(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.StockRecord, error)
	ListRecords(ctx context.Context, kind domain.RecordKind, start, end string) ([]domain.StockRecord, error)
	UpdateRecord(ctx context.Context, kind domain.RecordKind, record *domain.StockRecord) error
	DeleteRecord(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error
	Summary(ctx context.Context, q SummaryQuery) ([]domain.StockSummary, error)
	Items(ctx context.Context) ([]domain.Item, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
}

type stockService struct {
	records port.StockRecordRepository
	parties port.PartyRepository
}

// NewStockService creates a new StockService.
func NewStockService(records port.StockRecordRepository, parties port.PartyRepository) StockService {
	return &stockService{records: records, parties: parties}
}

func (s *stockService) CreateRecord(ctx context.Context, kind domain.RecordKind, record *domain.StockRecord) error {
	date, err := ledger.NormalizeDate(record.Date)
	if err != nil {
		return err
	}
	record.Kind = kind
	record.Date = date
	record.RecomputeTotals()
	return s.records.Create(ctx, record)
}

func (s *stockService) GetRecord(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.StockRecord, error) {
	return s.records.GetByID(ctx, kind, id)
}

func (s *stockService) ListRecords(ctx context.Context, kind domain.RecordKind, start, end string) ([]domain.StockRecord, error) {
	return s.records.List(ctx, kind, start, end)
}

func (s *stockService) UpdateRecord(ctx context.Context, kind domain.RecordKind, record *domain.StockRecord) error {
	date, err := ledger.NormalizeDate(record.Date)
	if err != nil {
		return err
	}
	record.Kind = kind
	record.Date = date
	record.RecomputeTotals()
	return s.records.Update(ctx, record)
}

func (s *stockService) DeleteRecord(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error {
	return s.records.Delete(ctx, kind, id)
}

func (s *stockService) Summary(ctx context.Context, q SummaryQuery) ([]domain.StockSummary, error) {
	filter := ledger.Filter{
		DateStart: q.StartDate,
		DateEnd:   q.EndDate,
		GroupBy:   q.GroupBy,
	}
	if strings.TrimSpace(q.PartyName) != "" {
		matches, err := s.parties.SearchByName(ctx, strings.TrimSpace(q.PartyName))
		if err != nil {
			return nil, err
		}
		ids := make(map[uuid.UUID]struct{}, len(matches))
		for _, p := range matches {
			ids[p.ID] = struct{}{}
		}
		filter.PartyIDs = ids
	}

	opening, inward, outward, err := s.fetchStreams(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Summarize(opening, inward, outward, filter), nil
}

func (s *stockService) Items(ctx context.Context) ([]domain.Item, error) {
	opening, inward, outward, err := s.fetchStreams(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	items := make([]domain.Item, 0)
	collect := func(records []domain.StockRecord) {
		for i := range records {
			for j := range records[i].Items {
				item := &records[i].Items[j]
				name := strings.TrimSpace(item.Name)
				key := strings.ToUpper(name) + "_" + strings.TrimSpace(item.HSNCode)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				items = append(items, domain.Item{
					Name:    name,
					HSNCode: strings.TrimSpace(item.HSNCode),
					Rate:    item.Rate,
				})
			}
		}
	}
	collect(opening)
	collect(inward)
	collect(outward)
	return items, nil
}

func (s *stockService) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice := &domain.Invoice{Record: *record}
	if record.PartyID != nil {
		party, err := s.parties.GetByID(ctx, *record.PartyID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		invoice.Party = party
	}
	return invoice, nil
}

func (s *stockService) fetchStreams(ctx context.Context) (opening, inward, outward []domain.StockRecord, err error) {
	if opening, err = s.records.List(ctx, domain.KindOpening, "", ""); err != nil {
		return nil, nil, nil, err
	}
	if inward, err = s.records.List(ctx, domain.KindInward, "", ""); err != nil {
		return nil, nil, nil, err
	}
	if outward, err = s.records.List(ctx, domain.KindOutward, "", ""); err != nil {
		return nil, nil, nil, err
	}
	return opening, inward, outward, nil
}
