package command

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	catdomain "github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/item/repository"
	unitdomain "github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/database/dbtest"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

func setup(t *testing.T) (*gorm.DB, domain.ItemRepository) {
	t.Helper()
	db := dbtest.NewSQLite(t, &catdomain.Category{}, &unitdomain.Unit{}, &domain.Item{})
	require.NoError(t, db.Create(&catdomain.Category{Name: "Analgesics"}).Error)
	require.NoError(t, db.Create(&unitdomain.Unit{Name: "Tablet"}).Error)
	return db, repository.NewGormItemRepository(db, crud.QueryTimeout(5*time.Second))
}

func testItem() CreateItemCommand {
	return CreateItemCommand{
		Name:          "Test Item",
		Price:         decimal.NewFromInt(100),
		StockQuantity: 100,
		CategoryID:    1,
		UnitID:        1,
		Actor:         "alice",
	}
}

func TestCreateItem_ThenList(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	res := NewCreateItemHandler(repo, nil).Handle(ctx, testItem())
	require.True(t, res.Success, res.MessageText())
	require.NotZero(t, res.Data.ID)
	assert.Equal(t, "100.00", res.Data.Price.StringFixed(2))
	require.NotNil(t, res.Data.Category)
	assert.Equal(t, "Analgesics", res.Data.Category.Name)
	require.NotNil(t, res.Data.Unit)
	assert.Equal(t, "Tablet", res.Data.Unit.Name)

	items, total, err := repo.List(ctx, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, res.Data.ID, items[0].ID)
}

func TestCreateItem_UpsertKeepsID(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()
	h := NewCreateItemHandler(repo, nil)

	first := h.Handle(ctx, testItem())
	require.True(t, first.Success)

	cmd := testItem()
	cmd.Price = decimal.RequireFromString("12.34")
	cmd.StockQuantity = 5
	second := h.Handle(ctx, cmd)
	require.True(t, second.Success, second.MessageText())

	assert.Equal(t, first.Data.ID, second.Data.ID)
	assert.Equal(t, "12.34", second.Data.Price.StringFixed(2))
	assert.Equal(t, int64(5), second.Data.StockQuantity)
}

func TestCreateItem_UnknownCategoryIsPersistenceError(t *testing.T) {
	_, repo := setup(t)
	cmd := testItem()
	cmd.CategoryID = 99

	res := NewCreateItemHandler(repo, nil).Handle(context.Background(), cmd)

	assert.False(t, res.Success)
	assert.Equal(t, response.KindPersistence, res.Kind)
	assert.NotEmpty(t, res.MessageText())
	assert.Nil(t, res.Data)
}

func TestCreateItem_NegativeStockRejectedByStore(t *testing.T) {
	_, repo := setup(t)
	cmd := testItem()
	cmd.StockQuantity = -1

	res := NewCreateItemHandler(repo, nil).Handle(context.Background(), cmd)

	assert.False(t, res.Success)
	assert.Equal(t, response.KindPersistence, res.Kind)
}

func TestUpdateItem(t *testing.T) {
	db, repo := setup(t)
	ctx := context.Background()
	require.NoError(t, db.Create(&unitdomain.Unit{Name: "Box"}).Error)
	created := NewCreateItemHandler(repo, nil).Handle(ctx, testItem())
	require.True(t, created.Success)

	h := NewUpdateItemHandler(repo, nil)
	cmd := testItem()
	cmd.Name = "Test Item XL"
	cmd.UnitID = 2
	res := h.Handle(ctx, UpdateItemCommand{ID: created.Data.ID, CreateItemCommand: cmd})
	require.True(t, res.Success, res.MessageText())
	assert.Equal(t, "Test Item XL", res.Data.Name)
	require.NotNil(t, res.Data.Unit)
	assert.Equal(t, "Box", res.Data.Unit.Name)

	missing := h.Handle(ctx, UpdateItemCommand{ID: 404, CreateItemCommand: cmd})
	assert.Equal(t, response.KindNotFound, missing.Kind)
	assert.Equal(t, "item 404 not found", missing.MessageText())
}

func TestDeleteItem(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()
	created := NewCreateItemHandler(repo, nil).Handle(ctx, testItem())
	require.True(t, created.Success)

	h := NewDeleteItemHandler(repo, nil)
	first := h.Handle(ctx, DeleteItemCommand{ID: created.Data.ID})
	require.True(t, first.Success)
	require.NotNil(t, first.Data)

	second := h.Handle(ctx, DeleteItemCommand{ID: created.Data.ID})
	assert.True(t, second.Success)
	assert.Nil(t, second.Data)
}

func TestDeleteReferencedCategoryIsRestricted(t *testing.T) {
	db, repo := setup(t)
	require.True(t, NewCreateItemHandler(repo, nil).Handle(context.Background(), testItem()).Success)

	err := db.Delete(&catdomain.Category{}, 1).Error
	assert.Error(t, err)
}
