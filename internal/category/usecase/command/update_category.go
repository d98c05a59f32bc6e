package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// UpdateCategoryCommand represents the command to update a category
type UpdateCategoryCommand struct {
	ID          uint
	Name        string
	Description *string
	Actor       string
}

// UpdateCategoryHandler handles update category command
type UpdateCategoryHandler struct {
	repo     domain.CategoryRepository
	notifier *notify.Notifier
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository, notifier *notify.Notifier) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo, notifier: notifier}
}

// Handle overwrites every field of the category with cmd.ID
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) response.Result[domain.Category] {
	category, err := h.repo.Update(ctx, cmd.ID, &domain.Category{
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if errors.Is(err, crud.ErrNotFound) {
		return response.Fail[domain.Category](response.KindNotFound, fmt.Sprintf("category %d not found", cmd.ID))
	}
	if err != nil {
		logger.Error(ctx).Err(err).Uint("category_id", cmd.ID).Msg("Failed to update category")
		return response.FromError[domain.Category](err)
	}

	logger.Info(ctx).Uint("category_id", category.ID).Msg("Category updated")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityCategory, kafka.ActionUpdated, category.ID, category.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(category, "Success!")
}
