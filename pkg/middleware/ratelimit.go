package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

const limiterPrefix = "inventory:ratelimit"

// NewLimiter builds a limiter for the formatted rate (e.g. "100-M"). Counters
// live in Redis when client is reachable, otherwise in process memory.
func NewLimiter(ctx context.Context, formatted string, client *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q: %w", formatted, err)
	}

	if client != nil {
		err := client.Ping(ctx).Err()
		if err == nil {
			store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: limiterPrefix})
			if err != nil {
				return nil, fmt.Errorf("create redis limiter store: %w", err)
			}
			return limiter.New(store, rate), nil
		}
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, using in-memory rate limit store")
	}

	store := memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: limiterPrefix})
	return limiter.New(store, rate), nil
}

// RateLimit throttles mutating requests per client IP. Reads pass through.
func RateLimit(l *limiter.Limiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			ctx, err := l.Get(r.Context(), l.GetIPKey(r))
			if err != nil {
				logger.Error(r.Context()).Err(err).Msg("Rate limiter store error")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(ctx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(ctx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(ctx.Reset, 10))

			if ctx.Reached {
				logger.Warn(r.Context()).
					Str("path", r.URL.Path).
					Str("remote_addr", r.RemoteAddr).
					Msg("Rate limit exceeded")
				response.Write(w, response.Fail[struct{}](response.KindRateLimited, "Too many requests"), http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
