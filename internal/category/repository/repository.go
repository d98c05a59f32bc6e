package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/pkg/crud"
)

// GormCategoryRepository stores categories through GORM.
type GormCategoryRepository struct {
	*crud.Repository[domain.Category]
}

// NewGormCategoryRepository creates a category repository.
func NewGormCategoryRepository(db *gorm.DB, timeout crud.QueryTimeout) *GormCategoryRepository {
	return &GormCategoryRepository{
		Repository: crud.New[domain.Category](db, crud.Options{
			Entity:        "category",
			UpdateColumns: []string{"name", "description"},
			Timeout:       time.Duration(timeout),
		}),
	}
}
