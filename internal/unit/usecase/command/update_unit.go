package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// UpdateUnitCommand represents the command to update a unit
type UpdateUnitCommand struct {
	ID          uint
	Name        string
	Description *string
	Actor       string
}

// UpdateUnitHandler handles update unit command
type UpdateUnitHandler struct {
	repo     domain.UnitRepository
	notifier *notify.Notifier
}

// NewUpdateUnitHandler creates a new update unit handler
func NewUpdateUnitHandler(repo domain.UnitRepository, notifier *notify.Notifier) *UpdateUnitHandler {
	return &UpdateUnitHandler{repo: repo, notifier: notifier}
}

// Handle overwrites every field of the unit with cmd.ID
func (h *UpdateUnitHandler) Handle(ctx context.Context, cmd UpdateUnitCommand) response.Result[domain.Unit] {
	unit, err := h.repo.Update(ctx, cmd.ID, &domain.Unit{
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if errors.Is(err, crud.ErrNotFound) {
		return response.Fail[domain.Unit](response.KindNotFound, fmt.Sprintf("unit %d not found", cmd.ID))
	}
	if err != nil {
		logger.Error(ctx).Err(err).Uint("unit_id", cmd.ID).Msg("Failed to update unit")
		return response.FromError[domain.Unit](err)
	}

	logger.Info(ctx).Uint("unit_id", unit.ID).Msg("Unit updated")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityUnit, kafka.ActionUpdated, unit.ID, unit.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(unit, "Success!")
}
