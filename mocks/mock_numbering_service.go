package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stockledger/internal/domain"
)

// MockNumberingService is a mock implementation of service.NumberingService.
type MockNumberingService struct {
	mock.Mock
}

func (m *MockNumberingService) NextNumber(ctx context.Context, invoiceType domain.InvoiceType, scheme domain.NumberingScheme) (string, error) {
	args := m.Called(ctx, invoiceType, scheme)
	return args.String(0), args.Error(1)
}
