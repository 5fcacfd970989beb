package cmd

import (
	httpin "thalitrack/internal/adapters/in/http"
	"thalitrack/internal/adapters/out/postgres"
	"thalitrack/internal/adapters/out/postgres/orderrepo"
	"thalitrack/internal/core/application/usecases/commands"
	"thalitrack/internal/core/application/usecases/queries"
	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordDeliveryCommandHandler() commands.RecordDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateOrderRepository returns a repository outside any unit of work for
// the read-side endpoints.
func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateRecordDeliveryCommandHandler(),
		c.CreateOrderRepository(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// noopTracker satisfies the repository's tracker when reads happen outside
// a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
