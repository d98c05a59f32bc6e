package domain

import (
	"context"
	"time"

	"github.com/tair/inventory-service/pkg/pagination"
)

// Category represents the category entity
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;uniqueIndex:uq_categories_name"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// NaturalKey is the upsert key.
func (c Category) NaturalKey() string {
	return c.Name
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	List(ctx context.Context, params pagination.Params) ([]Category, int64, error)
	All(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
	Upsert(ctx context.Context, category *Category) (*Category, error)
	Update(ctx context.Context, id uint, category *Category) (*Category, error)
	Delete(ctx context.Context, id uint) (*Category, error)
	Count(ctx context.Context) (int64, error)
}
