package audit

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-service/kafka"
)

func TestRecorder_CountsByEntityAndAction(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())
	ctx := context.Background()

	require.NoError(t, r.Handle(ctx, kafka.NewChangeEvent(kafka.EntityItem, kafka.ActionUpserted, 1, "Aspirin", "alice")))
	require.NoError(t, r.Handle(ctx, kafka.NewChangeEvent(kafka.EntityItem, kafka.ActionUpserted, 2, "Ibuprofen", "alice")))
	require.NoError(t, r.Handle(ctx, kafka.NewChangeEvent(kafka.EntityUnit, kafka.ActionDeleted, 3, "Box", "bob")))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.events.WithLabelValues(kafka.EntityItem, kafka.ActionUpserted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.events.WithLabelValues(kafka.EntityUnit, kafka.ActionDeleted)))
}

func TestRecorder_RejectsMalformed(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	err := r.Handle(context.Background(), kafka.ChangeEvent{EventType: "item.upserted"})

	assert.ErrorIs(t, err, ErrMalformedEvent)
	assert.Equal(t, 0, testutil.CollectAndCount(r.events))
}
