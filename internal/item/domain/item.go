package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	catdomain "github.com/tair/inventory-service/internal/category/domain"
	unitdomain "github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/pagination"
)

// Item represents a stocked product. It references exactly one category and
// one unit; referential integrity is enforced by the database.
type Item struct {
	ID            uint                `json:"id" gorm:"primaryKey"`
	Name          string              `json:"name" gorm:"size:255;not null;uniqueIndex:uq_items_name"`
	Price         decimal.Decimal     `json:"price" gorm:"type:numeric(12,2);not null"`
	StockQuantity int64               `json:"stockQuantity" gorm:"not null;default:0;check:chk_items_stock_quantity,stock_quantity >= 0"`
	CategoryID    uint                `json:"categoryId" gorm:"not null;index"`
	Category      *catdomain.Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	UnitID        uint                `json:"unitId" gorm:"not null;index"`
	Unit          *unitdomain.Unit    `json:"unit,omitempty" gorm:"foreignKey:UnitID;constraint:OnDelete:RESTRICT"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "items"
}

// NaturalKey is the upsert key.
func (i Item) NaturalKey() string {
	return i.Name
}

// ItemRepository defines the contract for item data access
type ItemRepository interface {
	List(ctx context.Context, params pagination.Params) ([]Item, int64, error)
	Search(ctx context.Context, term string, limit int) ([]Item, error)
	FindByID(ctx context.Context, id uint) (*Item, error)
	Upsert(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, id uint, item *Item) (*Item, error)
	Delete(ctx context.Context, id uint) (*Item, error)
	Count(ctx context.Context) (int64, error)
}
