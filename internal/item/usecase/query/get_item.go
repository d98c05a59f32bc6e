package query

import (
	"context"
	"errors"

	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// GetItemQuery represents the query to get an item
type GetItemQuery struct {
	ID uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle returns the item, or success with no data when it is absent
func (h *GetItemHandler) Handle(ctx context.Context, q GetItemQuery) response.Result[domain.Item] {
	item, err := h.repo.FindByID(ctx, q.ID)
	if errors.Is(err, crud.ErrNotFound) {
		return response.OK[domain.Item](nil, "Success!")
	}
	if err != nil {
		logger.Error(ctx).Err(err).Uint("item_id", q.ID).Msg("Failed to get item")
		return response.FromError[domain.Item](err)
	}
	return response.OK(item, "Success!")
}
