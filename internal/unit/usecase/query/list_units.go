package query

import (
	"context"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

// ListUnitsQuery represents the query to list units
type ListUnitsQuery struct {
	pagination.Params
}

// ListUnitsHandler handles list units query
type ListUnitsHandler struct {
	repo domain.UnitRepository
}

// NewListUnitsHandler creates a new list units handler
func NewListUnitsHandler(repo domain.UnitRepository) *ListUnitsHandler {
	return &ListUnitsHandler{repo: repo}
}

// Handle executes the list units query
func (h *ListUnitsHandler) Handle(ctx context.Context, q ListUnitsQuery) response.Result[pagination.Page[domain.Unit]] {
	params := q.Params.Normalize()

	units, total, err := h.repo.List(ctx, params)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to list units")
		return response.FromError[pagination.Page[domain.Unit]](err)
	}

	page := pagination.NewPage(units, total, params)
	return response.OK(&page, "Success!")
}
