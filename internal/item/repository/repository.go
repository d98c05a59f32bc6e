package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/pkg/crud"
)

// GormItemRepository stores items through GORM. Reads preload the
// referenced category and unit.
type GormItemRepository struct {
	*crud.Repository[domain.Item]
}

// NewGormItemRepository creates an item repository.
func NewGormItemRepository(db *gorm.DB, timeout crud.QueryTimeout) *GormItemRepository {
	return &GormItemRepository{
		Repository: crud.New[domain.Item](db, crud.Options{
			Entity:        "item",
			UpdateColumns: []string{"name", "price", "stock_quantity", "category_id", "unit_id"},
			Preload:       []string{"Category", "Unit"},
			Timeout:       time.Duration(timeout),
		}),
	}
}
