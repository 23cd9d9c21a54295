package cmd

import (
	"log/slog"

	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/accountingservice"
	"ordermanagement/internal/adapters/out/carservice"
	"ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/adapters/out/userservice"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock

	users   ports.UserClient
	cars    ports.CarClient
	billing ports.BillingClient
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithCommitLogger(logger)),
		clock:      kernel.SystemClock{},
		users:      userservice.NewClient(cfg.UserServiceURL, cfg.DependencyTimeout),
		cars:       carservice.NewClient(cfg.CarServiceURL, cfg.DependencyTimeout),
		billing:    accountingservice.NewClient(cfg.AccountingServiceURL, cfg.DependencyTimeout),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.users, c.cars, c.clock,
		commands.WithSerializedBookings(c.cfg.SerializeCarBookings))
}

func (c *CompositionRoot) CreateReserveOrderCommandHandler() commands.ReserveOrderCommandHandler {
	return commands.NewReserveOrderCommandHandler(c.orderUoWFactory(), c.users, c.cars, c.clock,
		commands.WithSerializedBookings(c.cfg.SerializeCarBookings))
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	return commands.NewFinishOrderCommandHandler(c.orderUoWFactory(), c.users, c.cars, c.billing, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

// CreateServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateServer(logger *slog.Logger) *httpin.Server {
	return httpin.NewServer(httpin.UseCases{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		ReserveOrder: c.CreateReserveOrderCommandHandler(),
		FinishOrder:  c.CreateFinishOrderCommandHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
	}, c.clock, logger)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOverdueOrdersJob(c.CreateGetOverdueOrdersQueryHandler(), c.clock, c.cfg.OverdueOrdersSchedule, logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
