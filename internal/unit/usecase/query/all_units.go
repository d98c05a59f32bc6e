package query

import (
	"context"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// AllUnitsHandler returns every unit for select boxes
type AllUnitsHandler struct {
	repo domain.UnitRepository
}

// NewAllUnitsHandler creates a new all units handler
func NewAllUnitsHandler(repo domain.UnitRepository) *AllUnitsHandler {
	return &AllUnitsHandler{repo: repo}
}

// Handle returns all units ordered by name
func (h *AllUnitsHandler) Handle(ctx context.Context) response.Result[[]domain.Unit] {
	units, err := h.repo.All(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to list all units")
		return response.FromError[[]domain.Unit](err)
	}
	if units == nil {
		units = []domain.Unit{}
	}
	return response.OK(&units, "Success!")
}
