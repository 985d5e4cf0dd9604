package cmd

import (
	"log/slog"

	"pathorder/internal/adapters/in/http"
	"pathorder/internal/adapters/out/postgres"
	"pathorder/internal/core/application/usecases/commands"
	"pathorder/internal/core/application/usecases/queries"
	"pathorder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingCountQueryHandler() queries.GetPendingCountQueryHandler {
	return queries.NewGetPendingCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryByDateRangeQueryHandler() queries.GetOrderHistoryByDateRangeQueryHandler {
	return queries.NewGetOrderHistoryByDateRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStoresQueryHandler() queries.ListStoresQueryHandler {
	return queries.NewListStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreDetailQueryHandler() queries.GetStoreDetailQueryHandler {
	return queries.NewGetStoreDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreMenusQueryHandler() queries.GetStoreMenusQueryHandler {
	return queries.NewGetStoreMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPendingBacklogQueryHandler() queries.ListPendingBacklogQueryHandler {
	return queries.NewListPendingBacklogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateGetDashboardQueryHandler(),
		c.CreateGetPendingCountQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetOrderHistoryByDateRangeQueryHandler(),
		c.CreateListStoresQueryHandler(),
		c.CreateGetStoreDetailQueryHandler(),
		c.CreateGetStoreMenusQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListPendingBacklogQueryHandler(),
		c.config.PendingBacklogThreshold,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
