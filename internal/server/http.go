// Package server assembles the HTTP and gRPC servers of the inventory service.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/ulule/limiter/v3"

	"github.com/tair/inventory-service/pkg/config"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/middleware"
	"github.com/tair/inventory-service/pkg/response"
)

// RouteRegistrar is implemented by the entity HTTP handlers.
type RouteRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

// PingFunc reports whether the database is reachable.
type PingFunc func(ctx context.Context) error

// HTTPOptions holds everything the HTTP router is built from.
type HTTPOptions struct {
	Config   config.HTTPConfig
	Ping     PingFunc
	Gatherer prometheus.Gatherer
	Limiter  *limiter.Limiter
	Routes   []RouteRegistrar
}

// Health is the payload of GET /health.
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// NewRouter registers the middleware chain, entity routes and the ops
// endpoints, and wraps the result in the CORS handler.
func NewRouter(opts HTTPOptions) http.Handler {
	router := mux.NewRouter()

	mw := middleware.DefaultConfig()
	if opts.Config.RequestTimeout > 0 {
		mw.TimeoutDuration = opts.Config.RequestTimeout
	}
	mw.Limiter = opts.Limiter
	middleware.Register(router, mw)

	for _, r := range opts.Routes {
		r.RegisterRoutes(router)
	}

	router.HandleFunc("/health", healthHandler(opts.Ping)).Methods("GET")

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return middleware.CORS(opts.Config.AllowedOrigins)(router)
}

// NewHTTPServer creates the HTTP server listening on cfg.Port.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// healthHandler godoc
// @Summary Health check
// @Description Reports whether the database answers
// @Tags Health
// @Produce json
// @Success 200 {object} HealthEnvelope
// @Failure 503 {object} HealthEnvelope
// @Router /health [get]
func healthHandler(ping PingFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if ping != nil {
			if err := ping(ctx); err != nil {
				logger.Warn(r.Context()).Err(err).Msg("Health check failed")
				res := response.Fail[Health](response.KindPersistence, "Database unavailable")
				res.Data = &Health{Status: "unavailable", Database: "down"}
				response.WriteJSON(w, http.StatusServiceUnavailable, res)
				return
			}
		}

		response.Write(w, response.OK(&Health{Status: "ok", Database: "up"}, "Inventory service is healthy"), http.StatusOK)
	}
}

// HealthEnvelope documents the health response.
type HealthEnvelope struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Data    *Health `json:"data"`
}
