package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/ulule/limiter/v3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/inventory-service/pkg/auth"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// Config holds configuration for middlewares
type Config struct {
	EnableLogging   bool
	EnableTracing   bool
	EnableRecovery  bool
	EnableTimeout   bool
	TimeoutDuration time.Duration
	OperationName   string
	// Limiter throttles mutating requests; nil disables rate limiting.
	Limiter *limiter.Limiter
}

// DefaultConfig returns default middleware configuration
func DefaultConfig() *Config {
	return &Config{
		EnableLogging:   true,
		EnableTracing:   true,
		EnableRecovery:  true,
		EnableTimeout:   true,
		TimeoutDuration: 30 * time.Second,
		OperationName:   "inventory-http-request",
	}
}

// Register registers all configured middlewares to the router
func Register(router *mux.Router, config *Config) {
	logger.Logger.Info().
		Bool("logging", config.EnableLogging).
		Bool("tracing", config.EnableTracing).
		Bool("recovery", config.EnableRecovery).
		Bool("timeout", config.EnableTimeout).
		Bool("rate_limit", config.Limiter != nil).
		Dur("timeout_duration", config.TimeoutDuration).
		Msg("Registering middlewares")

	// Recovery first so it catches panics of every later layer.
	if config.EnableRecovery {
		router.Use(Recovery())
	}
	if config.EnableTracing {
		router.Use(Tracing(config.OperationName))
	}
	if config.EnableTimeout {
		router.Use(Timeout(config.TimeoutDuration))
	}
	if config.EnableLogging {
		router.Use(Logging)
	}
	router.Use(RequestID())
	router.Use(SecurityHeaders())
	if config.Limiter != nil {
		router.Use(RateLimit(config.Limiter))
	}
	router.Use(SessionToken())

	logger.Logger.Info().Msg("All middlewares registered successfully")
}

// Recovery converts a panic into a 500 envelope.
func Recovery() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error(r.Context()).
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("Panic recovered")

					response.WriteJSON(w, http.StatusInternalServerError,
						response.Fail[struct{}](response.KindPersistence, "Internal Server Error"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Timeout bounds the handling time of a request. A request that runs out of
// time gets a 503 timeout envelope.
func Timeout(timeout time.Duration) mux.MiddlewareFunc {
	body, _ := json.Marshal(response.Fail[struct{}](response.KindTimeout, "Request timeout"))
	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, timeout, string(body))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Handlers overwrite this with their own Content-Type.
			w.Header().Set("Content-Type", "application/json")
			th.ServeHTTP(w, r)
		})
	}
}

// Tracing wraps HTTP handlers with OpenTelemetry tracing
func Tracing(operationName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operationName)
	}
}

// RequestID adds a unique request ID to each request
func RequestID() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", requestID)
			r.Header.Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}

// SessionToken stores the request's bearer token or session cookie in the
// context for the session provider.
func SessionToken() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := auth.TokenFromRequest(r); token != "" {
				r = r.WithContext(auth.WithToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORS creates the CORS handler that wraps the whole router.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler
}
