package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/crud"
)

// GormUnitRepository stores units through GORM.
type GormUnitRepository struct {
	*crud.Repository[domain.Unit]
}

// NewGormUnitRepository creates a unit repository.
func NewGormUnitRepository(db *gorm.DB, timeout crud.QueryTimeout) *GormUnitRepository {
	return &GormUnitRepository{
		Repository: crud.New[domain.Unit](db, crud.Options{
			Entity:        "unit",
			UpdateColumns: []string{"name", "description"},
			Timeout:       time.Duration(timeout),
		}),
	}
}
