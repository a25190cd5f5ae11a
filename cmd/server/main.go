// Command server runs the stock ledger HTTP API.
package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stockledger/internal/config"
	"stockledger/internal/domain"
	"stockledger/internal/handler"
	"stockledger/internal/repository/postgres"
	"stockledger/internal/router"
	"stockledger/internal/service"
	"stockledger/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init("stockledger", cfg.Log.Level, cfg.Log.Format)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	partyRepo := postgres.NewPartyRepo(db)
	recordRepo := postgres.NewStockRecordRepo(db)
	counterRepo := postgres.NewInvoiceCounterRepo(db)
	userRepo := postgres.NewUserRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Services
	authSvc := service.NewAuthService(userRepo, &cfg.JWT)
	partySvc := service.NewPartyService(partyRepo)
	stockSvc := service.NewStockService(recordRepo, partyRepo)
	recordSvc := service.NewRecordService(recordRepo)
	analyticsSvc := service.NewAnalyticsService(recordRepo, partyRepo, statsRepo, cfg.Report.WeekStartDay())
	numberingSvc := service.NewNumberingService(recordRepo, counterRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	partyH := handler.NewPartyHandler(partySvc)
	stockH := handler.NewStockHandler(stockSvc)
	recordH := handler.NewRecordHandler(recordSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	invoiceH := handler.NewInvoiceHandler(numberingSvc, stockSvc, domain.ParseNumberingScheme(cfg.Invoice.NumberingScheme))
	exportH := handler.NewExportHandler(stockSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, authSvc, authH, partyH, stockH, recordH, analyticsH, invoiceH, exportH, healthH)

	log.Info().Str("addr", cfg.Server.Port).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
