package action

import (
	"context"

	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/category/usecase/command"
	"github.com/tair/inventory-service/internal/category/usecase/query"
	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/validation"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

// CategoryActions validates submitted forms, applies the session guard and
// dispatches to the category handlers.
type CategoryActions struct {
	guard  *guard.Guard
	create *command.CreateCategoryHandler
	update *command.UpdateCategoryHandler
	delete *command.DeleteCategoryHandler
	get    *query.GetCategoryHandler
	list   *query.ListCategoriesHandler
	all    *query.AllCategoriesHandler
}

// NewCategoryActions creates the category actions
func NewCategoryActions(
	g *guard.Guard,
	create *command.CreateCategoryHandler,
	update *command.UpdateCategoryHandler,
	del *command.DeleteCategoryHandler,
	get *query.GetCategoryHandler,
	list *query.ListCategoriesHandler,
	all *query.AllCategoriesHandler,
) *CategoryActions {
	return &CategoryActions{
		guard:  g,
		create: create,
		update: update,
		delete: del,
		get:    get,
		list:   list,
		all:    all,
	}
}

// Create upserts a category from the name and description fields.
func (a *CategoryActions) Create(ctx context.Context, _ response.Result[domain.Category], form validation.Form) response.Result[domain.Category] {
	in, errs := validation.ParseCreateCategory(form)
	if len(errs) > 0 {
		return response.Invalid[domain.Category](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) response.Result[domain.Category] {
		return a.create.Handle(ctx, command.CreateCategoryCommand{
			Name:        in.Name,
			Description: in.Description,
			Actor:       s.Username,
		})
	})
}

// Update overwrites the category named by the id field.
func (a *CategoryActions) Update(ctx context.Context, _ response.Result[domain.Category], form validation.Form) response.Result[domain.Category] {
	id, errs := validation.ParseID(form)
	in, inErrs := validation.ParseCreateCategory(form)
	for field, msgs := range inErrs {
		errs[field] = append(errs[field], msgs...)
	}
	if len(errs) > 0 {
		return response.Invalid[domain.Category](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) response.Result[domain.Category] {
		return a.update.Handle(ctx, command.UpdateCategoryCommand{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Actor:       s.Username,
		})
	})
}

// Delete removes the category named by the id field.
func (a *CategoryActions) Delete(ctx context.Context, _ response.Result[domain.Category], form validation.Form) response.Result[domain.Category] {
	id, errs := validation.ParseID(form)
	if len(errs) > 0 {
		return response.Invalid[domain.Category](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) response.Result[domain.Category] {
		return a.delete.Handle(ctx, command.DeleteCategoryCommand{ID: id, Actor: s.Username})
	})
}

// Get returns the category named by the id field.
func (a *CategoryActions) Get(ctx context.Context, _ response.Result[domain.Category], form validation.Form) response.Result[domain.Category] {
	id, errs := validation.ParseID(form)
	if len(errs) > 0 {
		return response.Invalid[domain.Category](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, _ *guard.Session) response.Result[domain.Category] {
		return a.get.Handle(ctx, query.GetCategoryQuery{ID: id})
	})
}

// List returns one page of categories filtered by the search field.
func (a *CategoryActions) List(ctx context.Context, _ response.Result[pagination.Page[domain.Category]], form validation.Form) response.Result[pagination.Page[domain.Category]] {
	params, errs := validation.ParseListQuery(form)
	if len(errs) > 0 {
		return response.Invalid[pagination.Page[domain.Category]](errs.Map())
	}
	return a.list.Handle(ctx, query.ListCategoriesQuery{Params: params})
}

// All returns every category. Anonymous callers are allowed.
func (a *CategoryActions) All(ctx context.Context, _ response.Result[[]domain.Category], _ validation.Form) response.Result[[]domain.Category] {
	return guard.Run(ctx, a.guard, func(ctx context.Context, _ *guard.Session) response.Result[[]domain.Category] {
		return a.all.Handle(ctx)
	}, guard.Public())
}
