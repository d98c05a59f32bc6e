package query

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catdomain "github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/item/repository"
	unitdomain "github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/database/dbtest"
	"github.com/tair/inventory-service/pkg/pagination"
)

func seeded(t *testing.T, names ...string) domain.ItemRepository {
	t.Helper()
	db := dbtest.NewSQLite(t, &catdomain.Category{}, &unitdomain.Unit{}, &domain.Item{})
	require.NoError(t, db.Create(&catdomain.Category{Name: "Cardiology"}).Error)
	require.NoError(t, db.Create(&unitdomain.Unit{Name: "Tablet"}).Error)

	repo := repository.NewGormItemRepository(db, crud.QueryTimeout(5*time.Second))
	for i, n := range names {
		_, err := repo.Upsert(context.Background(), &domain.Item{
			Name:          n,
			Price:         decimal.NewFromInt(int64(i + 1)),
			StockQuantity: 10,
			CategoryID:    1,
			UnitID:        1,
		})
		require.NoError(t, err)
	}
	return repo
}

func TestListItems_SearchIsSubstring(t *testing.T) {
	repo := seeded(t, "Heart Medication", "Heartburn Relief", "Headache Relief")

	res := NewListItemsHandler(repo).Handle(context.Background(), ListItemsQuery{
		Params: pagination.Params{Search: "Heart", Page: 1, Limit: 10},
	})

	require.True(t, res.Success)
	assert.Equal(t, int64(2), res.Data.Total)
	assert.Equal(t, 1, res.Data.TotalPages)
	for _, item := range res.Data.Items {
		assert.Contains(t, item.Name, "Heart")
		require.NotNil(t, item.Category)
		assert.Equal(t, "Cardiology", item.Category.Name)
	}
}

func TestListItems_NewestFirst(t *testing.T) {
	repo := seeded(t, "First", "Second", "Third")

	res := NewListItemsHandler(repo).Handle(context.Background(), ListItemsQuery{})

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 3)
	assert.Equal(t, "Third", res.Data.Items[0].Name)
	assert.Equal(t, "First", res.Data.Items[2].Name)
}

func TestSelectItems_CapsAndOrders(t *testing.T) {
	names := make([]string, 0, 25)
	for i := 24; i >= 0; i-- {
		names = append(names, fmt.Sprintf("Pill %02d", i))
	}
	repo := seeded(t, names...)
	h := NewSelectItemsHandler(repo)

	res := h.Handle(context.Background(), SelectItemsQuery{Search: "pill"})
	require.True(t, res.Success)
	require.Len(t, *res.Data, SelectLimit)
	assert.Equal(t, "Pill 00", (*res.Data)[0].Name)

	none := h.Handle(context.Background(), SelectItemsQuery{Search: "syrup"})
	require.True(t, none.Success)
	assert.NotNil(t, *none.Data)
	assert.Empty(t, *none.Data)
}

func TestGetItem(t *testing.T) {
	repo := seeded(t, "Aspirin")
	h := NewGetItemHandler(repo)

	found := h.Handle(context.Background(), GetItemQuery{ID: 1})
	require.True(t, found.Success)
	assert.Equal(t, "Aspirin", found.Data.Name)
	require.NotNil(t, found.Data.Unit)

	absent := h.Handle(context.Background(), GetItemQuery{ID: 7})
	assert.True(t, absent.Success)
	assert.Nil(t, absent.Data)
}
