package command

import (
	"context"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// DeleteUnitCommand represents the command to delete a unit
type DeleteUnitCommand struct {
	ID    uint
	Actor string
}

// DeleteUnitHandler handles delete unit command
type DeleteUnitHandler struct {
	repo     domain.UnitRepository
	notifier *notify.Notifier
}

// NewDeleteUnitHandler creates a new delete unit handler
func NewDeleteUnitHandler(repo domain.UnitRepository, notifier *notify.Notifier) *DeleteUnitHandler {
	return &DeleteUnitHandler{repo: repo, notifier: notifier}
}

// Handle deletes the unit if it exists. Deleting an absent unit
// succeeds with no data.
func (h *DeleteUnitHandler) Handle(ctx context.Context, cmd DeleteUnitCommand) response.Result[domain.Unit] {
	unit, err := h.repo.Delete(ctx, cmd.ID)
	if err != nil {
		logger.Error(ctx).Err(err).Uint("unit_id", cmd.ID).Msg("Failed to delete unit")
		return response.FromError[domain.Unit](err)
	}
	if unit == nil {
		return response.OK[domain.Unit](nil, "Success!")
	}

	logger.Info(ctx).Uint("unit_id", unit.ID).Msg("Unit deleted")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityUnit, kafka.ActionDeleted, unit.ID, unit.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(unit, "Success!")
}
