package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/quake-data-dashboard/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/quake-data-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/quake-data-dashboard/internal/adapter/usgs"
	"github.com/couchcryptid/quake-data-dashboard/internal/config"
	"github.com/couchcryptid/quake-data-dashboard/internal/observability"
	"github.com/couchcryptid/quake-data-dashboard/internal/refresh"
	"github.com/couchcryptid/quake-data-dashboard/internal/store"
)

func main() {
	// A missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	feedClient := usgs.NewClient(cfg.FeedURL, cfg.FeedTimeout, cfg.FeedRetries, logger)
	st := store.New()

	// Snapshot publishing is feature-flagged via KAFKA_ENABLED.
	var publisher refresh.SnapshotPublisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("snapshot publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("snapshot publishing disabled")
	}

	refresher := refresh.New(feedClient, st, publisher, logger, metrics, cfg.PollInterval)

	srv := httpadapter.NewServer(cfg.HTTPAddr, st, refresher, refresher, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the refresh loop.
	go refresher.Run(ctx)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
