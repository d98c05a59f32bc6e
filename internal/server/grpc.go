package server

import (
	"context"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/tair/inventory-service/pkg/logger"
)

// HealthService is the service name whose status follows the database.
const HealthService = "inventory.v1.InventoryService"

// NewGRPCServer creates a gRPC server exposing the standard health service
// and server reflection.
func NewGRPCServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(LoggingInterceptor),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	return srv, hs
}

// ServeGRPC listens on addr and serves srv until it is stopped.
func ServeGRPC(srv *grpc.Server, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	logger.Logger.Info().Str("addr", addr).Msg("gRPC server started")
	return srv.Serve(lis)
}

// WatchHealth pings the database every interval and mirrors the result into
// hs until ctx is done. On return every service is marked NOT_SERVING.
func WatchHealth(ctx context.Context, hs *health.Server, ping PingFunc, interval time.Duration) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		st := healthpb.HealthCheckResponse_SERVING
		if err := ping(pctx); err != nil {
			st = healthpb.HealthCheckResponse_NOT_SERVING
			logger.Warn(ctx).Err(err).Msg("Database ping failed")
		}
		hs.SetServingStatus("", st)
		hs.SetServingStatus(HealthService, st)
	}

	check()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			hs.Shutdown()
			return
		case <-ticker.C:
			check()
		}
	}
}

// LoggingInterceptor logs gRPC requests
func LoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	event := logger.Debug(ctx)
	if err != nil {
		event = logger.Warn(ctx).Err(err).Str("code", status.Code(err).String())
	}
	event.Str("method", info.FullMethod).
		Dur("duration", time.Since(start)).
		Msg("gRPC request")
	return resp, err
}
