package query

import (
	"context"

	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// SelectLimit caps the options returned to an item picker.
const SelectLimit = 20

// SelectItemsQuery represents the query behind the item picker
type SelectItemsQuery struct {
	Search string
}

// SelectItemsHandler handles select items query
type SelectItemsHandler struct {
	repo domain.ItemRepository
}

// NewSelectItemsHandler creates a new select items handler
func NewSelectItemsHandler(repo domain.ItemRepository) *SelectItemsHandler {
	return &SelectItemsHandler{repo: repo}
}

// Handle returns up to SelectLimit items whose name contains q.Search,
// ordered by name.
func (h *SelectItemsHandler) Handle(ctx context.Context, q SelectItemsQuery) response.Result[[]domain.Item] {
	items, err := h.repo.Search(ctx, q.Search, SelectLimit)
	if err != nil {
		logger.Error(ctx).Err(err).Str("search", q.Search).Msg("Failed to search items")
		return response.FromError[[]domain.Item](err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return response.OK(&items, "Success!")
}
