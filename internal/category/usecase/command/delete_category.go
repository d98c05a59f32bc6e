package command

import (
	"context"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID    uint
	Actor string
}

// DeleteCategoryHandler handles delete category command
type DeleteCategoryHandler struct {
	repo     domain.CategoryRepository
	notifier *notify.Notifier
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.CategoryRepository, notifier *notify.Notifier) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo, notifier: notifier}
}

// Handle deletes the category if it exists. Deleting an absent category
// succeeds with no data.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) response.Result[domain.Category] {
	category, err := h.repo.Delete(ctx, cmd.ID)
	if err != nil {
		logger.Error(ctx).Err(err).Uint("category_id", cmd.ID).Msg("Failed to delete category")
		return response.FromError[domain.Category](err)
	}
	if category == nil {
		return response.OK[domain.Category](nil, "Success!")
	}

	logger.Info(ctx).Uint("category_id", category.ID).Msg("Category deleted")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityCategory, kafka.ActionDeleted, category.ID, category.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(category, "Success!")
}
