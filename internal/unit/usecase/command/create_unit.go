package command

import (
	"context"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/kafka"
	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// CreateUnitCommand represents the command to create or overwrite a unit
type CreateUnitCommand struct {
	Name        string
	Description *string
	Actor       string
}

// CreateUnitHandler handles create unit command
type CreateUnitHandler struct {
	repo     domain.UnitRepository
	notifier *notify.Notifier
}

// NewCreateUnitHandler creates a new create unit handler
func NewCreateUnitHandler(repo domain.UnitRepository, notifier *notify.Notifier) *CreateUnitHandler {
	return &CreateUnitHandler{repo: repo, notifier: notifier}
}

// Handle upserts the unit keyed on its name
func (h *CreateUnitHandler) Handle(ctx context.Context, cmd CreateUnitCommand) response.Result[domain.Unit] {
	unit, err := h.repo.Upsert(ctx, &domain.Unit{
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if err != nil {
		logger.Error(ctx).Err(err).Str("name", cmd.Name).Msg("Failed to upsert unit")
		return response.FromError[domain.Unit](err)
	}

	logger.Info(ctx).Uint("unit_id", unit.ID).Str("name", unit.Name).Msg("Unit upserted")
	h.notifier.Changed(ctx,
		kafka.NewChangeEvent(kafka.EntityUnit, kafka.ActionUpserted, unit.ID, unit.Name, cmd.Actor),
		h.repo.Count,
	)
	return response.OK(unit, "Success!")
}
