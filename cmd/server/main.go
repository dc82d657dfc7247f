package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"predial-consulta/internal/config"
	"predial-consulta/internal/database"
	"predial-consulta/internal/handlers"
	"predial-consulta/internal/middleware"
	"predial-consulta/internal/repositories"
	"predial-consulta/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	accountRepo := repositories.NewAccountRepository(db.DB)

	seedResult, err := services.NewStoreInitializer(accountRepo, &cfg.Seed, metrics, logger).Initialize(ctx)
	if err != nil {
		logger.Error("failed to seed store", "error", err)
		os.Exit(1)
	}
	logger.Info("store ready", "skipped", seedResult.Skipped, "inserted", seedResult.Inserted)

	rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)
	go rateLimiter.Run(ctx)

	e, err := handlers.NewRouter(handlers.RouterDeps{
		DB:                 db,
		LookupService:      services.NewLookupService(accountRepo, cfg.Files.DownloadURLTemplate, metrics, logger),
		CertificateService: services.NewCertificateService(&cfg.Certificate, metrics, logger),
		Metrics:            metrics,
		RateLimiter:        rateLimiter,
	})
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		logger.Info("starting server", "addr", cfg.Server.Addr(), "environment", cfg.Server.Environment, "driver", db.Dialect())
		if err := e.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
	}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
