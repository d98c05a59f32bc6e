package action

import (
	"context"

	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/internal/unit/usecase/command"
	"github.com/tair/inventory-service/internal/unit/usecase/query"
	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/validation"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

// UnitActions validates submitted forms, applies the session guard and
// dispatches to the unit handlers.
type UnitActions struct {
	guard  *guard.Guard
	create *command.CreateUnitHandler
	update *command.UpdateUnitHandler
	delete *command.DeleteUnitHandler
	get    *query.GetUnitHandler
	list   *query.ListUnitsHandler
	all    *query.AllUnitsHandler
}

// NewUnitActions creates the unit actions
func NewUnitActions(
	g *guard.Guard,
	create *command.CreateUnitHandler,
	update *command.UpdateUnitHandler,
	del *command.DeleteUnitHandler,
	get *query.GetUnitHandler,
	list *query.ListUnitsHandler,
	all *query.AllUnitsHandler,
) *UnitActions {
	return &UnitActions{
		guard:  g,
		create: create,
		update: update,
		delete: del,
		get:    get,
		list:   list,
		all:    all,
	}
}

// Create upserts a unit from the name and description fields.
func (a *UnitActions) Create(ctx context.Context, _ response.Result[domain.Unit], form validation.Form) response.Result[domain.Unit] {
	in, errs := validation.ParseCreateUnit(form)
	if len(errs) > 0 {
		return response.Invalid[domain.Unit](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) response.Result[domain.Unit] {
		return a.create.Handle(ctx, command.CreateUnitCommand{
			Name:        in.Name,
			Description: in.Description,
			Actor:       s.Username,
		})
	})
}

// Update overwrites the unit named by the id field.
func (a *UnitActions) Update(ctx context.Context, _ response.Result[domain.Unit], form validation.Form) response.Result[domain.Unit] {
	id, errs := validation.ParseID(form)
	in, inErrs := validation.ParseCreateUnit(form)
	for field, msgs := range inErrs {
		errs[field] = append(errs[field], msgs...)
	}
	if len(errs) > 0 {
		return response.Invalid[domain.Unit](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) response.Result[domain.Unit] {
		return a.update.Handle(ctx, command.UpdateUnitCommand{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Actor:       s.Username,
		})
	})
}

// Delete removes the unit named by the id field.
func (a *UnitActions) Delete(ctx context.Context, _ response.Result[domain.Unit], form validation.Form) response.Result[domain.Unit] {
	id, errs := validation.ParseID(form)
	if len(errs) > 0 {
		return response.Invalid[domain.Unit](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) response.Result[domain.Unit] {
		return a.delete.Handle(ctx, command.DeleteUnitCommand{ID: id, Actor: s.Username})
	})
}

// Get returns the unit named by the id field.
func (a *UnitActions) Get(ctx context.Context, _ response.Result[domain.Unit], form validation.Form) response.Result[domain.Unit] {
	id, errs := validation.ParseID(form)
	if len(errs) > 0 {
		return response.Invalid[domain.Unit](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, _ *guard.Session) response.Result[domain.Unit] {
		return a.get.Handle(ctx, query.GetUnitQuery{ID: id})
	})
}

// List returns one page of units filtered by the search field.
func (a *UnitActions) List(ctx context.Context, _ response.Result[pagination.Page[domain.Unit]], form validation.Form) response.Result[pagination.Page[domain.Unit]] {
	params, errs := validation.ParseListQuery(form)
	if len(errs) > 0 {
		return response.Invalid[pagination.Page[domain.Unit]](errs.Map())
	}
	return a.list.Handle(ctx, query.ListUnitsQuery{Params: params})
}

// All returns every unit. Anonymous callers are allowed.
func (a *UnitActions) All(ctx context.Context, _ response.Result[[]domain.Unit], _ validation.Form) response.Result[[]domain.Unit] {
	return guard.Run(ctx, a.guard, func(ctx context.Context, _ *guard.Session) response.Result[[]domain.Unit] {
		return a.all.Handle(ctx)
	}, guard.Public())
}
