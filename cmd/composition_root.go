package cmd

import (
	"log/slog"

	"kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/adapters/out/postgres/staffrepo"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/jobs"
	"kitchen/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.System(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(
		c.uowFactory.Create().OrderRepository(),
		services.NewTimingCalculator(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateGetOrderTimingQueryHandler() queries.GetOrderTimingQueryHandler {
	return queries.NewGetOrderTimingQueryHandler(
		c.uowFactory.Create().OrderRepository(),
		services.NewTimingCalculator(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateGetKitchenStatsQueryHandler() queries.GetKitchenStatsQueryHandler {
	return queries.NewGetKitchenStatsQueryHandler(c.gormDB, services.NewStatsAggregator(), c.clock)
}

func (c *CompositionRoot) CreateGetHistoryQueryHandler() queries.GetHistoryQueryHandler {
	return queries.NewGetHistoryQueryHandler(c.uowFactory.Create().HistoryRepository(), c.clock)
}

func (c *CompositionRoot) CreateGetStaffQueryHandler() queries.GetStaffQueryHandler {
	return queries.NewGetStaffQueryHandler(staffrepo.NewGormStaffRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetStaffPerformanceQueryHandler() queries.GetStaffPerformanceQueryHandler {
	return queries.NewGetStaffPerformanceQueryHandler(
		c.gormDB,
		staffrepo.NewGormStaffRepository(c.gormDB),
		services.NewStatsAggregator(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetKitchenStatsQueryHandler(),
		jobs.NewSlogOverdueNotifier(logger),
		logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer(jobManager *jobs.JobManager) *http.Server {
	var snapshots http.StatsSnapshotProvider
	if jobManager != nil {
		snapshots = jobManager
	}

	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrderTimingQueryHandler(),
		c.CreateGetKitchenStatsQueryHandler(),
		c.CreateGetHistoryQueryHandler(),
		c.CreateGetStaffQueryHandler(),
		c.CreateGetStaffPerformanceQueryHandler(),
		snapshots,
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
