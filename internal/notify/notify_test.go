package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/inventory-service/kafka"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.ChangeEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e kafka.ChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type gauge map[string]int64

func (g gauge) SetEntityCount(entity string, n int64) { g[entity] = n }

func TestChanged(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	g := gauge{}
	n := New(pub, g)

	n.Changed(context.Background(), kafka.NewChangeEvent(kafka.EntityUnit, kafka.ActionUpserted, 1, "Box", ""), func(context.Context) (int64, error) {
		return 4, nil
	})

	assert.Len(t, pub.events, 1)
	assert.Equal(t, int64(4), g["unit"])
}

func TestChanged_NilNotifier(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() {
		n.Changed(context.Background(), kafka.ChangeEvent{}, nil)
	})
}
