package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
	"stockledger/internal/ledger"
	"stockledger/internal/service"
	"stockledger/mocks"
)

func TestRecordList_SpansAllKindsWhenUnset(t *testing.T) {
	records := new(mocks.MockStockRecordRepo)

	records.On("List", mock.Anything, domain.KindOpening, "", "").Return([]domain.StockRecord{
		totaled(domain.KindOpening, "2025-01-01", 100, nil),
	}, nil)
	records.On("List", mock.Anything, domain.KindInward, "", "").Return([]domain.StockRecord{
		totaled(domain.KindInward, "2025-03-01", 200, nil),
	}, nil)
	records.On("List", mock.Anything, domain.KindOutward, "", "").Return([]domain.StockRecord{
		totaled(domain.KindOutward, "2025-02-01", 300, nil),
	}, nil)

	svc := service.NewRecordService(records)
	result, err := svc.List(context.Background(), "", ledger.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Newest first across kinds.
	assert.Equal(t, "2025-03-01", result[0].Date)
	assert.Equal(t, "2025-02-01", result[1].Date)
	assert.Equal(t, "2025-01-01", result[2].Date)
}

func TestRecordList_SingleKind(t *testing.T) {
	records := new(mocks.MockStockRecordRepo)

	records.On("List", mock.Anything, domain.KindOutward, "2025-01-01", "2025-12-31").
		Return([]domain.StockRecord{totaled(domain.KindOutward, "2025-02-01", 300, nil)}, nil)

	svc := service.NewRecordService(records)
	result, err := svc.List(context.Background(), domain.KindOutward, ledger.RecordFilter{
		DateStart: "2025-01-01",
		DateEnd:   "2025-12-31",
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	records.AssertNumberOfCalls(t, "List", 1)
}
