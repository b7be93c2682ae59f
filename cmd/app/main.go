package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sablemoor/RitualBot_Go/internal/catalog"
	"github.com/sablemoor/RitualBot_Go/internal/config"
	"github.com/sablemoor/RitualBot_Go/internal/cooldown"
	"github.com/sablemoor/RitualBot_Go/internal/database"
	"github.com/sablemoor/RitualBot_Go/internal/ocr"
	"github.com/sablemoor/RitualBot_Go/internal/optimizer"
	"github.com/sablemoor/RitualBot_Go/internal/prefs"
	"github.com/sablemoor/RitualBot_Go/internal/pricing"
	"github.com/sablemoor/RitualBot_Go/internal/resolver"
	"github.com/sablemoor/RitualBot_Go/internal/ritual"
	"github.com/sablemoor/RitualBot_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

// Connection pool tuning; a single optimizer service needs few connections.
const (
	dbMaxConns = 10
	dbMaxIdle  = 5 * time.Minute
	dbMaxLife  = time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := context.Background()

	// Item catalog
	cat, err := catalog.NewLoader().Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load item catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "items", cat.Len())

	// Market prices: Redis when configured, otherwise the snapshot file
	var prices pricing.Source
	if cfg.RedisAddr != "" {
		redisSource := pricing.NewRedisSource(cfg.RedisAddr)
		if err := redisSource.Ping(ctx); err != nil {
			slog.Error("Failed to connect to Redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer redisSource.Close()
		prices = redisSource
		slog.Info("Price source: redis", "addr", cfg.RedisAddr)
	} else {
		prices = pricing.NewFileSource(cfg.PricesPath, pricing.DefaultTTL)
		slog.Info("Price source: snapshot file", "path", cfg.PricesPath)
	}

	// OCR backend
	var ocrClient ocr.Client
	if cfg.OCRBaseURL != "" {
		ocrClient = ocr.NewClient(cfg.OCRBaseURL)
	} else {
		slog.Warn("No OCR backend configured; screenshot endpoints will be unavailable")
	}

	res, err := resolver.New(cat, prices)
	if err != nil {
		slog.Error("Failed to build item resolver", "error", err)
		os.Exit(1)
	}

	ritualService := ritual.NewService(
		optimizer.NewPlanner(),
		ocrClient,
		res,
		cooldown.NewService(cfg.RitualCooldown),
		cfg.MaxUnits,
	)

	// Preferences: Postgres when configured, in-memory otherwise
	var (
		dbPool    database.Pool
		prefsRepo prefs.Repository
	)
	if cfg.UsesPostgres() {
		pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdle, dbMaxLife)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		dbPool = pool
		prefsRepo = prefs.NewPostgresRepository(pool)
		slog.Info("Preferences store: postgres", "host", cfg.DBHost)
	} else {
		prefsRepo = prefs.NewMemoryRepository()
		slog.Warn("No database configured; preferences are in-memory only")
	}
	prefsService := prefs.NewService(prefsRepo)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, server.Deps{
		DBPool:        dbPool,
		OCRClient:     ocrClient,
		RitualService: ritualService,
		PrefsService:  prefsService,
	})

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
