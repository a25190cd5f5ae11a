package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"stockledger/internal/domain"
)

// MockStockRecordRepo is a mock implementation of port.StockRecordRepository.
type MockStockRecordRepo struct {
	mock.Mock
}

func (m *MockStockRecordRepo) Create(ctx context.Context, record *domain.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStockRecordRepo) GetByID(ctx context.Context, kind domain.RecordKind, id uuid.UUID) (*domain.StockRecord, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockRecord), args.Error(1)
}

func (m *MockStockRecordRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.StockRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockRecord), args.Error(1)
}

func (m *MockStockRecordRepo) List(ctx context.Context, kind domain.RecordKind, start, end string) ([]domain.StockRecord, error) {
	args := m.Called(ctx, kind, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockRecord), args.Error(1)
}

func (m *MockStockRecordRepo) Update(ctx context.Context, record *domain.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStockRecordRepo) Delete(ctx context.Context, kind domain.RecordKind, id uuid.UUID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockStockRecordRepo) InvoiceNumbers(ctx context.Context, kind domain.RecordKind) ([]string, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStockRecordRepo) PartyInvoiceNumbers(ctx context.Context, kind domain.RecordKind) ([]string, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
