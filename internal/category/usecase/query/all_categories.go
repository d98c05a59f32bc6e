package query

import (
	"context"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// AllCategoriesHandler returns every category for select boxes
type AllCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewAllCategoriesHandler creates a new all categories handler
func NewAllCategoriesHandler(repo domain.CategoryRepository) *AllCategoriesHandler {
	return &AllCategoriesHandler{repo: repo}
}

// Handle returns all categories ordered by name
func (h *AllCategoriesHandler) Handle(ctx context.Context) response.Result[[]domain.Category] {
	categories, err := h.repo.All(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to list all categories")
		return response.FromError[[]domain.Category](err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return response.OK(&categories, "Success!")
}
