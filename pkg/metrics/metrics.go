package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and inventory collectors of the service.
type Metrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	entities       *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_service_requests_total",
				Help: "Total number of requests to inventory service",
			},
			[]string{"entity", "method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_service_request_duration_seconds",
				Help:    "Duration of inventory service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"entity", "method", "endpoint"},
		),
		// client-side quantiles (p50, p90, p95, p99)
		requestSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "inventory_service_request_duration_summary",
				Help: "Summary of request durations with percentiles",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"entity", "method", "endpoint"},
		),
		entities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_entities_total",
				Help: "Number of stored rows per inventory entity",
			},
			[]string{"entity"},
		),
	}

	reg.MustRegister(m.requestCounter, m.requestLatency, m.requestSummary, m.entities)
	return m
}

// SetEntityCount records the current row count of entity.
func (m *Metrics) SetEntityCount(entity string, n int64) {
	m.entities.WithLabelValues(entity).Set(float64(n))
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Wrap records count and latency of next under the route template endpoint.
func (m *Metrics) Wrap(entity, endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		m.requestCounter.WithLabelValues(entity, r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.requestLatency.WithLabelValues(entity, r.Method, endpoint).Observe(duration)
		m.requestSummary.WithLabelValues(entity, r.Method, endpoint).Observe(duration)
	}
}
