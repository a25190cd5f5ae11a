package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stockledger/internal/domain"
	"stockledger/internal/ledger"
	"stockledger/internal/port"
	"stockledger/internal/report"
)

const topN = 10

// AnalyticsService builds the reporting views.
type AnalyticsService interface {
	// Analytics resolves the reporting window (an explicit range wins over
	// the named period, the end defaults to today) and composes the summary,
	// rankings, and the trailing twelve-month trend.
	Analytics(ctx context.Context, period domain.Period, startDate, endDate string) (*domain.Analytics, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type analyticsService struct {
	records   port.StockRecordRepository
	parties   port.PartyRepository
	stats     port.StatsRepository
	weekStart time.Weekday
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService. weekStart names the day
// the "week" period begins on.
func NewAnalyticsService(records port.StockRecordRepository, parties port.PartyRepository, stats port.StatsRepository, weekStart time.Weekday) AnalyticsService {
	return &analyticsService{
		records:   records,
		parties:   parties,
		stats:     stats,
		weekStart: weekStart,
		now:       time.Now,
	}
}

func (s *analyticsService) Analytics(ctx context.Context, period domain.Period, startDate, endDate string) (*domain.Analytics, error) {
	now := s.now()
	start, end := startDate, endDate
	if start == "" && end == "" {
		start = report.PeriodStart(period, now, s.weekStart)
	}
	if end == "" {
		end = now.Format(ledger.DateLayout)
	}

	// The trend needs months outside the resolved window, so fetch the full
	// streams once and slice in memory.
	opening, inward, outward, err := s.fetchStreams(ctx)
	if err != nil {
		return nil, err
	}

	inWindow := func(records []domain.StockRecord) []domain.StockRecord {
		out := make([]domain.StockRecord, 0, len(records))
		for i := range records {
			if ledger.InRange(records[i].Date, start, end) {
				out = append(out, records[i])
			}
		}
		return out
	}
	wOpening, wInward, wOutward := inWindow(opening), inWindow(inward), inWindow(outward)

	parties, err := s.parties.List(ctx, "")
	if err != nil {
		return nil, err
	}
	directory := make(map[uuid.UUID]domain.Party, len(parties))
	for _, p := range parties {
		directory[p.ID] = p
	}

	windowed := make([]domain.StockRecord, 0, len(wOpening)+len(wInward)+len(wOutward))
	windowed = append(windowed, wOpening...)
	windowed = append(windowed, wInward...)
	windowed = append(windowed, wOutward...)

	return &domain.Analytics{
		Summary:       report.Summary(wOpening, wInward, wOutward),
		TopItems:      report.TopItems(wOutward, topN),
		TopParties:    report.TopParties(windowed, directory, topN),
		MonthlyTrends: s.monthlyTrends(opening, inward, outward, now),
		Period:        period,
		DateRange:     domain.DateRange{Start: start, End: end},
	}, nil
}

// monthlyTrends buckets the trailing twelve calendar months, oldest first.
func (s *analyticsService) monthlyTrends(opening, inward, outward []domain.StockRecord, now time.Time) []domain.MonthlyTrend {
	trends := make([]domain.MonthlyTrend, 0, 12)
	for monthsAgo := 11; monthsAgo >= 0; monthsAgo-- {
		label, start, end := report.MonthBounds(now, monthsAgo)

		monthOf := func(records []domain.StockRecord) []domain.StockRecord {
			out := make([]domain.StockRecord, 0)
			for i := range records {
				if ledger.InRange(records[i].Date, start, end) {
					out = append(out, records[i])
				}
			}
			return out
		}
		mOpening, mInward, mOutward := monthOf(opening), monthOf(inward), monthOf(outward)
		summary := report.Summary(mOpening, mInward, mOutward)

		trends = append(trends, domain.MonthlyTrend{
			Month:        label,
			Purchases:    summary.TotalPurchases,
			Sales:        summary.TotalSales,
			Transactions: summary.TotalTransactions,
		})
	}
	return trends
}

func (s *analyticsService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.stats.GetDashboardStats(ctx)
}

func (s *analyticsService) fetchStreams(ctx context.Context) (opening, inward, outward []domain.StockRecord, err error) {
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
