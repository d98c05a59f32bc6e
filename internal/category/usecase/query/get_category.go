package query

import (
	"context"
	"errors"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// GetCategoryQuery represents the query to get a category
type GetCategoryQuery struct {
	ID uint
}

// GetCategoryHandler handles get category query
type GetCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle returns the category, or success with no data when it is absent
func (h *GetCategoryHandler) Handle(ctx context.Context, q GetCategoryQuery) response.Result[domain.Category] {
	category, err := h.repo.FindByID(ctx, q.ID)
	if errors.Is(err, crud.ErrNotFound) {
		return response.OK[domain.Category](nil, "Success!")
	}
	if err != nil {
		logger.Error(ctx).Err(err).Uint("category_id", q.ID).Msg("Failed to get category")
		return response.FromError[domain.Category](err)
	}
	return response.OK(category, "Success!")
}
