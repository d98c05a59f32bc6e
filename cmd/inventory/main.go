package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	_ "github.com/tair/inventory-service/docs"
	"github.com/tair/inventory-service/internal/category"
	catdomain "github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/item"
	itemdomain "github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/internal/server"
	"github.com/tair/inventory-service/internal/unit"
	unitdomain "github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/auth"
	"github.com/tair/inventory-service/pkg/config"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/database"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/metrics"
	"github.com/tair/inventory-service/pkg/middleware"
	"github.com/tair/inventory-service/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("inventory-service", false, "info")
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.Service.Name, cfg.Service.IsDevelopment(), cfg.Service.LogLevel)
	logger.Logger.Info().
		Str("service", cfg.Service.Name).
		Str("environment", cfg.Service.Environment).
		Str("log_level", cfg.Service.LogLevel).
		Msg("Starting inventory service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Service.Name, cfg.Service.Version, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
				defer cancel()
				if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to flush tracer")
				}
			}()
		}
	}

	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := migrate(ctx, cfg.DB, db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Bool("auto_migrate", cfg.DB.AutoMigrate).Msg("Database initialized successfully")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	rateLimiter, err := middleware.NewLimiter(ctx, cfg.HTTP.RateLimit, redisClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("rate", cfg.HTTP.RateLimit).Msg("Invalid rate limit")
	}

	publisher := newPublisher(cfg.Kafka)
	defer publisher.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)
	notifier := notify.New(publisher, m)

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	g := guard.New(guard.NewTokenSessionProvider(tokens))
	timeout := crud.QueryTimeout(cfg.DB.QueryTimeout)

	// Initialize handlers with Wire DI
	categoryHandler, err := category.InitializeHTTPHandler(db, timeout, g, notifier, m)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize category handler")
	}
	unitHandler, err := unit.InitializeHTTPHandler(db, timeout, g, notifier, m)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize unit handler")
	}
	itemHandler, err := item.InitializeHTTPHandler(db, timeout, g, notifier, m)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize item handler")
	}

	seedEntityGauge(ctx, db, m)

	ping := func(ctx context.Context) error { return database.Ping(ctx, db) }
	httpServer := server.NewHTTPServer(cfg.HTTP, server.NewRouter(server.HTTPOptions{
		Config:   cfg.HTTP,
		Ping:     ping,
		Gatherer: registry,
		Limiter:  rateLimiter,
		Routes:   []server.RouteRegistrar{categoryHandler, unitHandler, itemHandler},
	}))
	grpcServer, healthServer := server.NewGRPCServer()

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Logger.Info().
			Str("port", cfg.HTTP.Port).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		return server.ServeGRPC(grpcServer, ":"+cfg.GRPC.Port)
	})
	group.Go(func() error {
		server.WatchHealth(gctx, healthServer, ping, 10*time.Second)
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		logger.Logger.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
		defer cancel()
		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Logger.Error().Err(err).Msg("Server stopped with error")
	}
	logger.Logger.Info().Msg("Server exited")
}

// migrate applies the embedded goose migrations, or GORM AutoMigrate when
// DB_AUTO_MIGRATE is set.
func migrate(ctx context.Context, cfg config.DBConfig, db *gorm.DB) error {
	if cfg.AutoMigrate {
		return db.WithContext(ctx).AutoMigrate(&catdomain.Category{}, &unitdomain.Unit{}, &itemdomain.Item{})
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return database.Migrate(ctx, sqlDB)
}

func newPublisher(cfg config.KafkaConfig) kafka.EventPublisher {
	if !cfg.Enabled() {
		logger.Logger.Info().Msg("Kafka brokers not configured, change events disabled")
		return kafka.NopPublisher{}
	}

	publisher, err := kafka.NewPublisher(cfg.Brokers, cfg.Topic)
	if err != nil {
		logger.Logger.Warn().Err(err).Strs("brokers", cfg.Brokers).Msg("Failed to create Kafka publisher, change events disabled")
		return kafka.NopPublisher{}
	}
	logger.Logger.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("Kafka publisher initialized")
	return publisher
}

// seedEntityGauge sets the initial row counts; mutations keep them current.
func seedEntityGauge(ctx context.Context, db *gorm.DB, m *metrics.Metrics) {
	for entity, model := range map[string]any{
		kafka.EntityCategory: &catdomain.Category{},
		kafka.EntityUnit:     &unitdomain.Unit{},
		kafka.EntityItem:     &itemdomain.Item{},
	} {
		var n int64
		if err := db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			logger.Logger.Warn().Err(err).Str("entity", entity).Msg("Failed to count rows")
			continue
		}
		m.SetEntityCount(entity, n)
	}
}
