// Package notify fans a committed mutation out to the change-event stream
// and the entity gauge.
package notify

import (
	"context"

	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/logger"
)

// EntityGauge records the number of stored rows of an entity.
type EntityGauge interface {
	SetEntityCount(entity string, n int64)
}

// CountFunc returns the current row count of an entity.
type CountFunc func(ctx context.Context) (int64, error)

// Notifier publishes change events and refreshes the entity gauge. A nil
// Notifier does nothing.
type Notifier struct {
	publisher kafka.EventPublisher
	gauge     EntityGauge
}

// New creates a notifier. Either dependency may be nil.
func New(publisher kafka.EventPublisher, gauge EntityGauge) *Notifier {
	return &Notifier{publisher: publisher, gauge: gauge}
}

// Changed reports a successful mutation. Failures are logged and never
// returned; the mutation has already committed.
func (n *Notifier) Changed(ctx context.Context, event kafka.ChangeEvent, count CountFunc) {
	if n == nil {
		return
	}

	if n.publisher != nil {
		if err := n.publisher.Publish(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).
				Str("event_type", event.EventType).
				Uint("entity_id", event.EntityID).
				Msg("Failed to publish change event")
		}
	}

	if n.gauge != nil && count != nil {
		total, err := count(ctx)
		if err != nil {
			logger.Warn(ctx).Err(err).Str("entity", event.Entity).Msg("Failed to refresh entity count")
			return
		}
		n.gauge.SetEntityCount(event.Entity, total)
	}
}
