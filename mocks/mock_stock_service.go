package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"stockledger/internal/domain"
	"stockledger/internal/service"
)

// MockStockService is a mock implementation of service.StockService.
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) CreateRecord(ctx context.Context, kind domain.RecordKind, record *domain.StockRecord) error {
	args := m.Called(ctx, kind, record)
	return args.Error(0)
}

func (m *MockStockService) GetRecord(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.StockRecord, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockRecord), args.Error(1)
}

func (m *MockStockService) ListRecords(ctx context.Context, kind domain.RecordKind, start, end string) ([]domain.StockRecord, error) {
	args := m.Called(ctx, kind, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockRecord), args.Error(1)
}

func (m *MockStockService) UpdateRecord(ctx context.Context, kind domain.RecordKind, record *domain.StockRecord) error {
	args := m.Called(ctx, kind, record)
	return args.Error(0)
}

func (m *MockStockService) DeleteRecord(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockStockService) Summary(ctx context.Context, q service.SummaryQuery) ([]domain.StockSummary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockSummary), args.Error(1)
}

func (m *MockStockService) Items(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockStockService) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
