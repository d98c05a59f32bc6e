package command

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// CreateItemCommand represents the command to create or overwrite an item
type CreateItemCommand struct {
	Name          string
	Price         decimal.Decimal
	StockQuantity int64
	CategoryID    uint
	UnitID        uint
	Actor         string
}

func (c CreateItemCommand) item() *domain.Item {
	return &domain.Item{
		Name:          c.Name,
		Price:         c.Price,
		StockQuantity: c.StockQuantity,
		CategoryID:    c.CategoryID,
		UnitID:        c.UnitID,
	}
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo     domain.ItemRepository
	notifier *notify.Notifier
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository, notifier *notify.Notifier) *CreateItemHandler {
	return &CreateItemHandler{repo: repo, notifier: notifier}
}

// Handle upserts the item keyed on its name. Unknown category or unit ids
// are rejected by the database and reported as persistence failures.
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) response.Result[domain.Item] {
	item, err := h.repo.Upsert(ctx, cmd.item())
	if err != nil {
		logger.Error(ctx).Err(err).
			Str("name", cmd.Name).
			Uint("category_id", cmd.CategoryID).
			Uint("unit_id", cmd.UnitID).
			Msg("Failed to upsert item")
		return response.FromError[domain.Item](err)
	}

	logger.Info(ctx).
		Uint("item_id", item.ID).
		Str("name", item.Name).
		Str("price", item.Price.String()).
		Int64("stock_quantity", item.StockQuantity).
		Msg("Item upserted")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityItem, kafka.ActionUpserted, item.ID, item.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(item, "Success!")
}
