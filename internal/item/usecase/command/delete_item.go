package command

import (
	"context"

	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// DeleteItemCommand represents the command to delete an item
type DeleteItemCommand struct {
	ID    uint
	Actor string
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	repo     domain.ItemRepository
	notifier *notify.Notifier
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository, notifier *notify.Notifier) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo, notifier: notifier}
}

// Handle deletes the item if it exists
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) response.Result[domain.Item] {
	item, err := h.repo.Delete(ctx, cmd.ID)
	if err != nil {
		logger.Error(ctx).Err(err).Uint("item_id", cmd.ID).Msg("Failed to delete item")
		return response.FromError[domain.Item](err)
	}
	if item == nil {
		logger.Debug(ctx).Uint("item_id", cmd.ID).Msg("Item already absent")
		return response.OK[domain.Item](nil, "Success!")
	}

	logger.Info(ctx).Uint("item_id", item.ID).Msg("Item deleted")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityItem, kafka.ActionDeleted, item.ID, item.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(item, "Success!")
}
