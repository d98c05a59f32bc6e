package domain

import (
	"time"

	catdomain "github.com/tair/inventory-service/internal/category/domain"
	unitdomain "github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/pagination"
)

// ItemView is the client representation of an item. Price is a fixed
// two-decimal string so no precision is lost in JSON numbers.
type ItemView struct {
	ID            uint                `json:"id"`
	Name          string              `json:"name"`
	Price         string              `json:"price" example:"12.50"`
	StockQuantity int64               `json:"stockQuantity"`
	CategoryID    uint                `json:"categoryId"`
	Category      *catdomain.Category `json:"category,omitempty"`
	UnitID        uint                `json:"unitId"`
	Unit          *unitdomain.Unit    `json:"unit,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// NewItemView converts item for the client. A nil item yields nil.
func NewItemView(item *Item) *ItemView {
	if item == nil {
		return nil
	}
	return &ItemView{
		ID:            item.ID,
		Name:          item.Name,
		Price:         item.Price.StringFixed(2),
		StockQuantity: item.StockQuantity,
		CategoryID:    item.CategoryID,
		Category:      item.Category,
		UnitID:        item.UnitID,
		Unit:          item.Unit,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// NewItemViews converts a slice of items; the result is never nil.
func NewItemViews(items []Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for i := range items {
		views = append(views, *NewItemView(&items[i]))
	}
	return views
}

// NewItemViewPage converts one page of items.
func NewItemViewPage(page *pagination.Page[Item]) *pagination.Page[ItemView] {
	if page == nil {
		return nil
	}
	return &pagination.Page[ItemView]{
		Items:      NewItemViews(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
}
