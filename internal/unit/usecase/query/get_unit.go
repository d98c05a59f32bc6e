package query

import (
	"context"
	"errors"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// GetUnitQuery represents the query to get a unit
type GetUnitQuery struct {
	ID uint
}

// GetUnitHandler handles get unit query
type GetUnitHandler struct {
	repo domain.UnitRepository
}

// NewGetUnitHandler creates a new get unit handler
func NewGetUnitHandler(repo domain.UnitRepository) *GetUnitHandler {
	return &GetUnitHandler{repo: repo}
}

// Handle returns the unit, or success with no data when it is absent
func (h *GetUnitHandler) Handle(ctx context.Context, q GetUnitQuery) response.Result[domain.Unit] {
	unit, err := h.repo.FindByID(ctx, q.ID)
	if errors.Is(err, crud.ErrNotFound) {
		return response.OK[domain.Unit](nil, "Success!")
	}
	if err != nil {
		logger.Error(ctx).Err(err).Uint("unit_id", q.ID).Msg("Failed to get unit")
		return response.FromError[domain.Unit](err)
	}
	return response.OK(unit, "Success!")
}
