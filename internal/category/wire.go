//go:build wireinject
// +build wireinject

package category

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-service/internal/category/action"
	"github.com/tair/inventory-service/internal/category/delivery/http"
	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/internal/category/repository"
	"github.com/tair/inventory-service/internal/category/usecase/command"
	"github.com/tair/inventory-service/internal/category/usecase/query"
	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/metrics"
)

// Wire sets
var RepositorySet = wire.NewSet(
	repository.NewGormCategoryRepository,
	wire.Bind(new(domain.CategoryRepository), new(*repository.GormCategoryRepository)),
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateCategoryHandler,
	command.NewUpdateCategoryHandler,
	command.NewDeleteCategoryHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetCategoryHandler,
	query.NewListCategoriesHandler,
	query.NewAllCategoriesHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	timeout crud.QueryTimeout,
	g *guard.Guard,
	notifier *notify.Notifier,
	m *metrics.Metrics,
) (*http.CategoryHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		action.NewCategoryActions,
		http.NewCategoryHandler,
	)
	return nil, nil
}
