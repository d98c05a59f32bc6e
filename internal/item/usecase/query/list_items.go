package query

import (
	"context"

	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

// ListItemsQuery represents the query to list items
type ListItemsQuery struct {
	pagination.Params
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle returns one page of items, newest first, with category and unit
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) response.Result[pagination.Page[domain.Item]] {
	params := q.Params.Normalize()

	items, total, err := h.repo.List(ctx, params)
	if err != nil {
		logger.Error(ctx).Err(err).Str("search", params.Search).Msg("Failed to list items")
		return response.FromError[pagination.Page[domain.Item]](err)
	}

	page := pagination.NewPage(items, total, params)
	return response.OK(&page, "Success!")
}
