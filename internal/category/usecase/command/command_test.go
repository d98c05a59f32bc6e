package command

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/category/repository"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/database/dbtest"
	"github.com/tair/inventory-service/pkg/response"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.ChangeEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e kafka.ChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type countGauge map[string]int64

func (g countGauge) SetEntityCount(entity string, n int64) { g[entity] = n }

type fixture struct {
	repo      domain.CategoryRepository
	publisher *recordingPublisher
	gauge     countGauge
	notifier  *notify.Notifier
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := dbtest.NewSQLite(t, &domain.Category{})
	pub := &recordingPublisher{}
	g := countGauge{}
	return fixture{
		repo:      repository.NewGormCategoryRepository(db, crud.QueryTimeout(5*time.Second)),
		publisher: pub,
		gauge:     g,
		notifier:  notify.New(pub, g),
	}
}

func strPtr(s string) *string { return &s }

func TestCreateCategory_Upsert(t *testing.T) {
	f := setup(t)
	h := NewCreateCategoryHandler(f.repo, f.notifier)
	ctx := context.Background()

	first := h.Handle(ctx, CreateCategoryCommand{Name: "Analgesics", Description: strPtr("Pain"), Actor: "alice"})
	require.True(t, first.Success, first.MessageText())
	assert.Equal(t, "Success!", first.MessageText())
	require.NotZero(t, first.Data.ID)

	second := h.Handle(ctx, CreateCategoryCommand{Name: "Analgesics", Description: strPtr("Pain relief")})
	require.True(t, second.Success)
	assert.Equal(t, first.Data.ID, second.Data.ID)
	assert.Equal(t, "Pain relief", *second.Data.Description)

	require.Len(t, f.publisher.events, 2)
	assert.Equal(t, "category.upserted", f.publisher.events[0].EventType)
	assert.Equal(t, "alice", f.publisher.events[0].Actor)
	assert.Equal(t, int64(1), f.gauge["category"])
}

func TestUpdateCategory(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created := NewCreateCategoryHandler(f.repo, nil).Handle(ctx, CreateCategoryCommand{Name: "Vitamins"})
	require.True(t, created.Success)

	h := NewUpdateCategoryHandler(f.repo, f.notifier)
	res := h.Handle(ctx, UpdateCategoryCommand{ID: created.Data.ID, Name: "Supplements", Description: strPtr("Daily")})
	require.True(t, res.Success, res.MessageText())
	assert.Equal(t, "Supplements", res.Data.Name)

	missing := h.Handle(ctx, UpdateCategoryCommand{ID: 999, Name: "Ghost"})
	assert.False(t, missing.Success)
	assert.Equal(t, response.KindNotFound, missing.Kind)
	assert.Equal(t, "category 999 not found", missing.MessageText())
	assert.Nil(t, missing.Data)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, "category.updated", f.publisher.events[0].EventType)
}

func TestUpdateCategory_DuplicateNameIsPersistenceError(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	create := NewCreateCategoryHandler(f.repo, nil)
	require.True(t, create.Handle(ctx, CreateCategoryCommand{Name: "Taken"}).Success)
	other := create.Handle(ctx, CreateCategoryCommand{Name: "Other"})
	require.True(t, other.Success)

	res := NewUpdateCategoryHandler(f.repo, nil).Handle(ctx, UpdateCategoryCommand{ID: other.Data.ID, Name: "Taken"})
	assert.False(t, res.Success)
	assert.Equal(t, response.KindPersistence, res.Kind)
	assert.NotEmpty(t, res.MessageText())
	assert.Nil(t, res.Data)
}

func TestDeleteCategory_Idempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created := NewCreateCategoryHandler(f.repo, nil).Handle(ctx, CreateCategoryCommand{Name: "Antibiotics"})
	require.True(t, created.Success)

	h := NewDeleteCategoryHandler(f.repo, f.notifier)
	first := h.Handle(ctx, DeleteCategoryCommand{ID: created.Data.ID})
	require.True(t, first.Success)
	require.NotNil(t, first.Data)
	assert.Equal(t, "Antibiotics", first.Data.Name)

	second := h.Handle(ctx, DeleteCategoryCommand{ID: created.Data.ID})
	assert.True(t, second.Success)
	assert.Nil(t, second.Data)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, "category.deleted", f.publisher.events[0].EventType)
	assert.Equal(t, int64(0), f.gauge["category"])
}
