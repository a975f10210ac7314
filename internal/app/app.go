package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/caballebrios/nightboard/internal/config"
	cacherepo "github.com/caballebrios/nightboard/internal/infrastructure/repository/cache"
	"github.com/caballebrios/nightboard/internal/infrastructure/repository/sqldb"
	"github.com/caballebrios/nightboard/internal/interfaces/httpapi"
	"github.com/caballebrios/nightboard/internal/platform/cache"
	"github.com/caballebrios/nightboard/internal/platform/logging"
	"github.com/caballebrios/nightboard/internal/usecase"
)

// settingsCacheTTL bounds cross-process staleness of cached settings.
// In-process updates invalidate immediately.
const settingsCacheTTL = time.Minute

// NewHTTPServer wires storage, services and the HTTP layer into a ready
// server. The returned cleanup closes the database handle and must run
// after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, dialect, err := sqldb.Connect(ctx, sqldb.Options{
		DatabaseURL:     cfg.DatabaseURL,
		SQLitePath:      cfg.SQLitePath,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database failed", "error", err)
		}
	}

	store := sqldb.NewStore(db, dialect)
	if err := store.EnsureSchema(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}

	playerRepo := sqldb.NewPlayerRepository(store)
	seasonRepo := sqldb.NewSeasonRepository(store)
	gameRepo := sqldb.NewGameRepository(store)
	nightRepo := sqldb.NewNightRepository(store)
	penaltyRepo := sqldb.NewPenaltyRepository(store)
	reportRepo := sqldb.NewReportRepository(store)
	settingsRepo := cacherepo.NewSettingsRepository(
		sqldb.NewSettingsRepository(store),
		cache.NewStore(settingsCacheTTL),
	)
	adminRepo := sqldb.NewAdminRepository(store, cfg.SQLitePath)

	playerSvc := usecase.NewPlayerService(playerRepo)
	seasonSvc := usecase.NewSeasonService(seasonRepo)
	gameSvc := usecase.NewGameService(gameRepo)
	nightSvc := usecase.NewNightService(nightRepo, seasonRepo)
	penaltySvc := usecase.NewPenaltyService(penaltyRepo, nightRepo, playerRepo, settingsRepo)
	reportSvc := usecase.NewReportService(reportRepo, seasonRepo, nightRepo, cfg.SummaryWorkers)
	settingsSvc := usecase.NewSettingsService(settingsRepo)
	adminSvc := usecase.NewAdminService(adminRepo)

	if cfg.SeedHistoryOnStart {
		seedHistory(ctx, adminSvc, logger)
	}

	handler := httpapi.NewHandler(
		playerSvc,
		seasonSvc,
		gameSvc,
		nightSvc,
		penaltySvc,
		reportSvc,
		settingsSvc,
		adminSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// seedHistory loads the bundled first-season archive. A failed import
// keeps the server booting; the admin can re-run it through the API.
func seedHistory(ctx context.Context, adminSvc *usecase.AdminService, logger *logging.Logger) {
	result, err := adminSvc.ImportHistory(ctx)
	switch {
	case err != nil:
		logger.WarnContext(ctx, "history import failed", "error", err)
	case result.AlreadyImported:
		logger.InfoContext(ctx, "history already imported", "season", result.SeasonName)
	default:
		logger.InfoContext(ctx, "history imported",
			"season", result.SeasonName,
			"nights", result.NightsImported,
			"rounds", result.RoundsImported,
		)
	}
}
