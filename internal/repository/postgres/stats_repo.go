package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stockledger/internal/domain"
	"stockledger/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const dashboardStatsQuery = `SELECT
	(SELECT COUNT(*) FROM parties) AS total_parties,
	COUNT(CASE WHEN kind IN ('opening', 'inward') THEN 1 END) AS total_inward,
	COUNT(CASE WHEN kind = 'outward' THEN 1 END) AS total_outward
FROM stock_records`

const distinctItemsQuery = `SELECT COUNT(DISTINCT item->>'name')
FROM stock_records CROSS JOIN LATERAL jsonb_array_elements(items) AS item`

func (r *statsRepo) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats struct {
		TotalParties int `db:"total_parties"`
		TotalInward  int `db:"total_inward"`
		TotalOutward int `db:"total_outward"`
	}
	if err := r.db.GetContext(ctx, &stats, dashboardStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetDashboardStats records: %w", err)
	}

	var totalItems int
	if err := r.db.GetContext(ctx, &totalItems, distinctItemsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetDashboardStats items: %w", err)
	}

	return &domain.DashboardStats{
		TotalParties: stats.TotalParties,
		TotalItems:   totalItems,
		TotalInward:  stats.TotalInward,
		TotalOutward: stats.TotalOutward,
	}, nil
}
