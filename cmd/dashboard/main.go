package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wrench-attack-stats/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/wrench-attack-stats/internal/adapter/kafka"
	"github.com/couchcryptid/wrench-attack-stats/internal/config"
	"github.com/couchcryptid/wrench-attack-stats/internal/dashboard"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ds, err := domain.LoadDataset()
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded",
		"records", len(ds.Records),
		"market_cap_points", len(ds.MarketCap),
		"user_years", len(ds.Users),
		"version", ds.Fingerprint(),
	)

	svc := dashboard.NewService(ds, clockwork.NewRealClock(), logger, metrics)
	if err := svc.Warm(); err != nil {
		logger.Error("failed to build snapshot", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Publish the snapshot once per process (feature-flagged via PUBLISH_ENABLED).
	var publisher *kafkaadapter.Publisher
	if cfg.PublishEnabled {
		publisher = kafkaadapter.NewPublisher(cfg, logger, metrics)
		go func() {
			snap, err := svc.Snapshot()
			if err != nil {
				return
			}
			if err := publisher.Publish(ctx, snap); err != nil {
				logger.Error("snapshot publish failed", "error", err)
			}
		}()
	} else {
		logger.Info("snapshot publishing disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, metrics, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
