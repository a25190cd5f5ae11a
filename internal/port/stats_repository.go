package port

import (
	"context"

	"stockledger/internal/domain"
)

// StatsRepository computes the dashboard counters.
type StatsRepository interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
