package action

import (
	"context"

	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/item/usecase/command"
	"github.com/tair/inventory-service/internal/item/usecase/query"
	"github.com/tair/inventory-service/internal/validation"
	"github.com/tair/inventory-service/pkg/pagination"
	"github.com/tair/inventory-service/pkg/response"
)

type (
	itemResult   = response.Result[domain.ItemView]
	itemsResult  = response.Result[[]domain.ItemView]
	itemsPage    = pagination.Page[domain.ItemView]
	itemsPageRes = response.Result[itemsPage]
)

// ItemActions validates submitted forms, applies the session guard and
// dispatches to the item handlers. Every result carries ItemView data.
type ItemActions struct {
	guard  *guard.Guard
	create *command.CreateItemHandler
	update *command.UpdateItemHandler
	delete *command.DeleteItemHandler
	get    *query.GetItemHandler
	list   *query.ListItemsHandler
	sel    *query.SelectItemsHandler
}

// NewItemActions creates the item actions
func NewItemActions(
	g *guard.Guard,
	create *command.CreateItemHandler,
	update *command.UpdateItemHandler,
	del *command.DeleteItemHandler,
	get *query.GetItemHandler,
	list *query.ListItemsHandler,
	sel *query.SelectItemsHandler,
) *ItemActions {
	return &ItemActions{
		guard:  g,
		create: create,
		update: update,
		delete: del,
		get:    get,
		list:   list,
		sel:    sel,
	}
}

func toCommand(in validation.CreateItemInput, actor string) command.CreateItemCommand {
	return command.CreateItemCommand{
		Name:          in.Name,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CategoryID:    uint(in.CategoryID),
		UnitID:        uint(in.UnitID),
		Actor:         actor,
	}
}

// Create upserts an item from the name, price, stockQuantity, categoryId
// and unitId fields.
func (a *ItemActions) Create(ctx context.Context, _ itemResult, form validation.Form) itemResult {
	in, errs := validation.ParseCreateItem(form)
	if len(errs) > 0 {
		return response.Invalid[domain.ItemView](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) itemResult {
		res := a.create.Handle(ctx, toCommand(in, s.Username))
		return response.Map(res, domain.NewItemView)
	})
}

// Update overwrites the item named by the id field.
func (a *ItemActions) Update(ctx context.Context, _ itemResult, form validation.Form) itemResult {
	id, errs := validation.ParseID(form)
	in, inErrs := validation.ParseCreateItem(form)
	for field, msgs := range inErrs {
		errs[field] = append(errs[field], msgs...)
	}
	if len(errs) > 0 {
		return response.Invalid[domain.ItemView](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) itemResult {
		res := a.update.Handle(ctx, command.UpdateItemCommand{ID: id, CreateItemCommand: toCommand(in, s.Username)})
		return response.Map(res, domain.NewItemView)
	})
}

// Delete removes the item named by the id field.
func (a *ItemActions) Delete(ctx context.Context, _ itemResult, form validation.Form) itemResult {
	id, errs := validation.ParseID(form)
	if len(errs) > 0 {
		return response.Invalid[domain.ItemView](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, s *guard.Session) itemResult {
		res := a.delete.Handle(ctx, command.DeleteItemCommand{ID: id, Actor: s.Username})
		return response.Map(res, domain.NewItemView)
	})
}

// Get returns the item named by the id field.
func (a *ItemActions) Get(ctx context.Context, _ itemResult, form validation.Form) itemResult {
	id, errs := validation.ParseID(form)
	if len(errs) > 0 {
		return response.Invalid[domain.ItemView](errs.Map())
	}

	return guard.Run(ctx, a.guard, func(ctx context.Context, _ *guard.Session) itemResult {
		return response.Map(a.get.Handle(ctx, query.GetItemQuery{ID: id}), domain.NewItemView)
	})
}

// List returns one page of items filtered by the search field.
func (a *ItemActions) List(ctx context.Context, _ itemsPageRes, form validation.Form) itemsPageRes {
	params, errs := validation.ParseListQuery(form)
	if len(errs) > 0 {
		return response.Invalid[itemsPage](errs.Map())
	}
	res := a.list.Handle(ctx, query.ListItemsQuery{Params: params})
	return response.Map(res, domain.NewItemViewPage)
}

// Select returns the picker options matching the query field.
func (a *ItemActions) Select(ctx context.Context, _ itemsResult, form validation.Form) itemsResult {
	search, _ := form.Value("query")
	return guard.Run(ctx, a.guard, func(ctx context.Context, _ *guard.Session) itemsResult {
		res := a.sel.Handle(ctx, query.SelectItemsQuery{Search: search})
		return response.Map(res, func(items *[]domain.Item) *[]domain.ItemView {
			views := domain.NewItemViews(*items)
			return &views
		})
	}, guard.Public())
}
