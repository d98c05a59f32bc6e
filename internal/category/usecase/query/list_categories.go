package query

import (
	"context"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

// ListCategoriesQuery represents the query to list categories
type ListCategoriesQuery struct {
	pagination.Params
}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) response.Result[pagination.Page[domain.Category]] {
	params := q.Params.Normalize()

	categories, total, err := h.repo.List(ctx, params)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to list categories")
		return response.FromError[pagination.Page[domain.Category]](err)
	}

	page := pagination.NewPage(categories, total, params)
	return response.OK(&page, "Success!")
}
