// Package audit records inventory change events consumed from Kafka.
package audit

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/logger"
)

// ErrMalformedEvent is returned for events without an id or entity.
var ErrMalformedEvent = errors.New("malformed change event")

// Recorder writes every change to the structured log and counts it.
type Recorder struct {
	events *prometheus.CounterVec
}

// NewRecorder creates a recorder whose counter is registered with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_audit_events_total",
				Help: "Inventory change events recorded by the audit consumer",
			},
			[]string{"entity", "action"},
		),
	}
	reg.MustRegister(r.events)
	return r
}

// Register subscribes the recorder to every change event type.
func (r *Recorder) Register(c *kafka.Consumer) {
	for _, eventType := range kafka.EventTypes() {
		c.RegisterHandler(eventType, r.Handle)
	}
}

// Handle records one event.
func (r *Recorder) Handle(ctx context.Context, event kafka.ChangeEvent) error {
	if event.EventID == "" || event.Entity == "" {
		logger.Warn(ctx).Str("event_type", event.EventType).Msg("Dropping malformed change event")
		return ErrMalformedEvent
	}

	action := strings.TrimPrefix(event.EventType, event.Entity+".")
	r.events.WithLabelValues(event.Entity, action).Inc()

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("entity", event.Entity).
		Str("action", action).
		Uint("entity_id", event.EntityID).
		Str("name", event.Name).
		Str("actor", event.Actor).
		Time("changed_at", event.Timestamp).
		Msg("Inventory changed")
	return nil
}
