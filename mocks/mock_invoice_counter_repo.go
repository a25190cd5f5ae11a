package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stockledger/internal/domain"
)

// MockInvoiceCounterRepo is a mock implementation of
// port.InvoiceCounterRepository.
type MockInvoiceCounterRepo struct {
	mock.Mock
}

func (m *MockInvoiceCounterRepo) Next(ctx context.Context, invoiceType domain.InvoiceType, scheme domain.NumberingScheme, seed int64) (int64, error) {
	args := m.Called(ctx, invoiceType, scheme, seed)
	return args.Get(0).(int64), args.Error(1)
}
