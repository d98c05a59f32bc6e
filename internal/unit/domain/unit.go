package domain

import (
	"context"
	"time"

	"github.com/tair/inventory-service/pkg/pagination"
)

// Unit is a unit of measure items are stocked in (tablet, box, ml)
type Unit struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;uniqueIndex:uq_units_name"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Unit) TableName() string {
	return "units"
}

// NaturalKey is the upsert key.
func (u Unit) NaturalKey() string {
	return u.Name
}

// UnitRepository defines the contract for unit data access
type UnitRepository interface {
	List(ctx context.Context, params pagination.Params) ([]Unit, int64, error)
	All(ctx context.Context) ([]Unit, error)
	FindByID(ctx context.Context, id uint) (*Unit, error)
	Upsert(ctx context.Context, unit *Unit) (*Unit, error)
	Update(ctx context.Context, id uint, unit *Unit) (*Unit, error)
	Delete(ctx context.Context, id uint) (*Unit, error)
	Count(ctx context.Context) (int64, error)
}
