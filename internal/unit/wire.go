//go:build wireinject
// +build wireinject

package unit

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-service/internal/unit/action"
	"github.com/tair/inventory-service/internal/unit/delivery/http"
	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/internal/unit/repository"
	"github.com/tair/inventory-service/internal/unit/usecase/command"
	"github.com/tair/inventory-service/internal/unit/usecase/query"
	"github.com/tair/inventory-service/internal/guard"
	"github.com/tair/inventory-service/internal/notify"
	"github.com/tair/inventory-service/pkg/crud"
	"github.com/tair/inventory-service/pkg/metrics"
)

// Wire sets
var RepositorySet = wire.NewSet(
	repository.NewGormUnitRepository,
	wire.Bind(new(domain.UnitRepository), new(*repository.GormUnitRepository)),
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateUnitHandler,
	command.NewUpdateUnitHandler,
	command.NewDeleteUnitHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetUnitHandler,
	query.NewListUnitsHandler,
	query.NewAllUnitsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	timeout crud.QueryTimeout,
	g *guard.Guard,
	notifier *notify.Notifier,
	m *metrics.Metrics,
) (*http.UnitHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		action.NewUnitActions,
		http.NewUnitHandler,
	)
	return nil, nil
}
