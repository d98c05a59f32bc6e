package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// UpdateItemCommand represents the command to overwrite an item
type UpdateItemCommand struct {
	ID uint
	CreateItemCommand
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo     domain.ItemRepository
	notifier *notify.Notifier
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository, notifier *notify.Notifier) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo, notifier: notifier}
}

// Handle overwrites every field of the item with cmd.ID
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) response.Result[domain.Item] {
	item, err := h.repo.Update(ctx, cmd.ID, cmd.item())
	if errors.Is(err, crud.ErrNotFound) {
		return response.Fail[domain.Item](response.KindNotFound, fmt.Sprintf("item %d not found", cmd.ID))
	}
	if err != nil {
		logger.Error(ctx).Err(err).Uint("item_id", cmd.ID).Msg("Failed to update item")
		return response.FromError[domain.Item](err)
	}

	logger.Info(ctx).Uint("item_id", item.ID).Int64("stock_quantity", item.StockQuantity).Msg("Item updated")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityItem, kafka.ActionUpdated, item.ID, item.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(item, "Success!")
}
