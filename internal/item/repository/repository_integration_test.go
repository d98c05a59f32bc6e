//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catdomain "github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/item/domain"
	unitdomain "github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/database/dbtest"
	"github.com/tair/inventory-service/pkg/pagination"
)

func TestGormItemRepository_Postgres(t *testing.T) {
	db := dbtest.NewPostgres(t)
	ctx := context.Background()

	cat := &catdomain.Category{Name: "Cardiology"}
	require.NoError(t, db.Create(cat).Error)
	unit := &unitdomain.Unit{Name: "Tablet"}
	require.NoError(t, db.Create(unit).Error)

	repo := NewGormItemRepository(db, crud.QueryTimeout(5*time.Second))
	for _, name := range []string{"Heart Medication", "Heartburn Relief", "Headache Relief"} {
		_, err := repo.Upsert(ctx, &domain.Item{
			Name:          name,
			Price:         decimal.RequireFromString("9999999999.99"),
			StockQuantity: 1,
			CategoryID:    cat.ID,
			UnitID:        unit.ID,
		})
		require.NoError(t, err)
	}

	items, total, err := repo.List(ctx, pagination.Params{Search: "heart", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "9999999999.99", items[0].Price.StringFixed(2))
	require.NotNil(t, items[0].Category)
	assert.Equal(t, "Cardiology", items[0].Category.Name)

	_, err = repo.Upsert(ctx, &domain.Item{Name: "Orphan", CategoryID: cat.ID + 100, UnitID: unit.ID})
	assert.Error(t, err, "foreign key must be enforced")

	_, err = repo.Upsert(ctx, &domain.Item{Name: "Negative", StockQuantity: -1, CategoryID: cat.ID, UnitID: unit.ID})
	assert.Error(t, err, "stock check constraint must be enforced")

	err = db.Delete(&catdomain.Category{}, cat.ID).Error
	assert.Error(t, err, "referenced category must not be deletable")
}
