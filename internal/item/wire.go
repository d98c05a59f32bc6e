//go:build wireinject
// +build wireinject

package item

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/item/action"
	"github.com/tair/inventory-service/internal/item/delivery/http"
	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/internal/item/repository"
	"github.com/tair/inventory-service/internal/item/usecase/command"
	"github.com/tair/inventory-service/internal/item/usecase/query"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/metrics"
)

// Wire sets
var RepositorySet = wire.NewSet(
	repository.NewGormItemRepository,
	wire.Bind(new(domain.ItemRepository), new(*repository.GormItemRepository)),
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateItemHandler,
	command.NewUpdateItemHandler,
	command.NewDeleteItemHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetItemHandler,
	query.NewListItemsHandler,
	query.NewSelectItemsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	timeout crud.QueryTimeout,
	g *guard.Guard,
	notifier *notify.Notifier,
	m *metrics.Metrics,
) (*http.ItemHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		action.NewItemActions,
		http.NewItemHandler,
	)
	return nil, nil
}
