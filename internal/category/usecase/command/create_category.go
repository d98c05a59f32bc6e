package command

import (
	"context"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// CreateCategoryCommand represents the command to create or overwrite a category
type CreateCategoryCommand struct {
	Name        string
	Description *string
	Actor       string
}

// CreateCategoryHandler handles create category command
type CreateCategoryHandler struct {
	repo     domain.CategoryRepository
	notifier *notify.Notifier
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository, notifier *notify.Notifier) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo, notifier: notifier}
}

// Handle upserts the category keyed on its name
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) response.Result[domain.Category] {
	category, err := h.repo.Upsert(ctx, &domain.Category{
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if err != nil {
		logger.Error(ctx).Err(err).Str("name", cmd.Name).Msg("Failed to upsert category")
		return response.FromError[domain.Category](err)
	}

	logger.Info(ctx).Uint("category_id", category.ID).Str("name", category.Name).Msg("Category upserted")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityCategory, kafka.ActionUpserted, category.ID, category.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(category, "Success!")
}
