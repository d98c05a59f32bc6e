package crud

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-service/pkg/database/dbtest"
	"github.com/tair/inventory-service/pkg/pagination"
)

type widget struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null;uniqueIndex"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (w widget) NaturalKey() string { return w.Name }

func newWidgetRepo(t *testing.T) *Repository[widget] {
	t.Helper()
	db := dbtest.NewSQLite(t, &widget{})
	return New[widget](db, Options{
		Entity:        "widget",
		UpdateColumns: []string{"name", "description"},
		Timeout:       5 * time.Second,
	})
}

func strPtr(s string) *string { return &s }

func seed(t *testing.T, repo *Repository[widget], names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := repo.Upsert(context.Background(), &widget{Name: n})
		require.NoError(t, err)
	}
}

func TestList_Pagination(t *testing.T) {
	repo := newWidgetRepo(t)
	ctx := context.Background()
	for i := 0; i < 23; i++ {
		seed(t, repo, fmt.Sprintf("widget-%02d", i))
	}

	rows, total, err := repo.List(ctx, pagination.Params{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(23), total)
	assert.Len(t, rows, 3)

	rows, _, err = repo.List(ctx, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, "widget-22", rows[0].Name, "newest first")

	rows, total, err = repo.List(ctx, pagination.Params{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, int64(23), total)
}

func TestList_SearchIsCaseInsensitive(t *testing.T) {
	repo := newWidgetRepo(t)
	seed(t, repo, "Heart", "Heart Failure", "Lung")

	for _, term := range []string{"heart", "HEART", "hEaRt"} {
		rows, total, err := repo.List(context.Background(), pagination.Params{Search: term, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total, term)
		assert.Len(t, rows, 2, term)
		assert.Equal(t, 1, pagination.TotalPages(total, 10))
	}
}

func TestList_SearchEscapesWildcards(t *testing.T) {
	repo := newWidgetRepo(t)
	seed(t, repo, "100% cotton", "1000 pieces", "snake_case", "snakecase")

	_, total, err := repo.List(context.Background(), pagination.Params{Search: "100%", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = repo.List(context.Background(), pagination.Params{Search: "e_c", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUpsert_IsIdempotentOnName(t *testing.T) {
	repo := newWidgetRepo(t)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, &widget{Name: "Box", Description: strPtr("old")})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.Upsert(ctx, &widget{Name: "Box", Description: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.Description)
	assert.Equal(t, "new", *second.Description)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindByID(t *testing.T) {
	repo := newWidgetRepo(t)
	ctx := context.Background()
	created, err := repo.Upsert(ctx, &widget{Name: "Bottle"})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bottle", got.Name)

	_, err = repo.FindByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	repo := newWidgetRepo(t)
	ctx := context.Background()
	created, err := repo.Upsert(ctx, &widget{Name: "Jar", Description: strPtr("glass")})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &widget{Name: "Jar XL"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jar XL", updated.Name)
	assert.Nil(t, updated.Description, "full-field update clears omitted description")

	_, err = repo.Update(ctx, 999, &widget{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_UniqueViolationIsWrapped(t *testing.T) {
	repo := newWidgetRepo(t)
	ctx := context.Background()
	seed(t, repo, "Taken")
	other, err := repo.Upsert(ctx, &widget{Name: "Free"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, other.ID, &widget{Name: "Taken"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "update widget")
}

func TestDelete_IsIdempotent(t *testing.T) {
	repo := newWidgetRepo(t)
	ctx := context.Background()
	created, err := repo.Upsert(ctx, &widget{Name: "Crate"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Crate", deleted.Name)

	again, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestAllAndSearch_OrderByName(t *testing.T) {
	repo := newWidgetRepo(t)
	ctx := context.Background()
	seed(t, repo, "Cup", "Antenna", "Bolt", "Cap")

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Antenna", all[0].Name)
	assert.Equal(t, "Cup", all[3].Name)

	found, err := repo.Search(ctx, "c", 2)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Cap", found[0].Name)
	assert.Equal(t, "Cup", found[1].Name)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
}
