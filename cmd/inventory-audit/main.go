package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tair/inventory-service/internal/audit"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/config"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("inventory-audit", false, "info")
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	serviceName := cfg.Service.Name + "-audit"
	logger.Init(serviceName, cfg.Service.IsDevelopment(), cfg.Service.LogLevel)

	if !cfg.Kafka.Enabled() {
		logger.Logger.Fatal().Msg("KAFKA_BROKERS is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		if tp, err := tracing.InitTracer(serviceName, cfg.Service.Version, cfg.Tracing.JaegerEndpoint); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			defer tracing.Shutdown(context.Background(), tp)
		}
	}

	registry := prometheus.NewRegistry()
	recorder := audit.NewRecorder(registry)

	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{cfg.Kafka.Topic})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	recorder.Register(consumer)
	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: ":" + cfg.HTTP.Port, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Logger.Info().Str("port", cfg.HTTP.Port).Msg("Audit metrics server started")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error().Err(err).Msg("Audit metrics server failed")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down audit consumer...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to stop metrics server")
	}
}
