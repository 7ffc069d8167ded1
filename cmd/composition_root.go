package cmd

import (
	"log/slog"
	"time"

	"lockerfleet/internal/adapters/out/ordersync"
	"lockerfleet/internal/adapters/out/postgres"
	"lockerfleet/internal/adapters/out/postgres/classifierrepo"
	"lockerfleet/internal/adapters/out/postgres/deliveryrepo"
	"lockerfleet/internal/adapters/out/postgres/lockerrepo"
	"lockerfleet/internal/adapters/out/postgres/routerepo"
	"lockerfleet/internal/adapters/out/postgres/timeslotrepo"
	"lockerfleet/internal/core/application/usecases/commands"
	"lockerfleet/internal/core/application/usecases/queries"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	location   *time.Location
	logger     *slog.Logger
	orderSync  *ordersync.Client
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	location *time.Location,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.SystemClock(),
		location:   location,
		logger:     logger,
		orderSync:  ordersync.NewClient(configs.OrderSyncURL),
	}
}

func (c *CompositionRoot) Location() *time.Location {
	return c.location
}

func (c *CompositionRoot) CreateSlotAvailability() *services.SlotAvailability {
	return services.NewSlotAvailability(
		timeslotrepo.NewGormTimeSlotConfigRepository(c.gormDB),
		routerepo.NewGormRouteVersionRepository(c.gormDB),
		c.uowFactory.Create().DeliveryRepository(),
		c.clock,
		c.location,
	)
}

func (c *CompositionRoot) CreateUpdateCabinetCommandHandler() commands.UpdateCabinetCommandHandler {
	var f commands.CabinetUoWFactory = FuncCabinetUoWFactory(func() commands.CabinetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCabinetCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCabinetCommandHandler() commands.DeleteCabinetCommandHandler {
	var f commands.CabinetUoWFactory = FuncCabinetUoWFactory(func() commands.CabinetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCabinetCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLockerStatusCommandHandler() commands.UpdateLockerStatusCommandHandler {
	var f commands.LockerUoWFactory = FuncLockerUoWFactory(func() commands.LockerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLockerStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateApplyTerminalEventCommandHandler() commands.ApplyTerminalEventCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyTerminalEventCommandHandler(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRebindOvertimeDeliveriesCommandHandler() commands.RebindOvertimeDeliveriesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRebindOvertimeDeliveriesCommandHandler(
		f,
		c.CreateSlotAvailability(),
		deliveryrepo.NewGormOrderRepository(c.gormDB),
		c.orderSync,
		c.clock,
		c.location,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetAllCabinetsQueryHandler() queries.GetAllCabinetsQueryHandler {
	return queries.NewGetAllCabinetsQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetCabinetDetailsQueryHandler() queries.GetCabinetDetailsQueryHandler {
	return queries.NewGetCabinetDetailsQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetAvailableCabinetsQueryHandler() queries.GetAvailableCabinetsQueryHandler {
	return queries.NewGetAvailableCabinetsQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetCabinetLockersQueryHandler() queries.GetCabinetLockersQueryHandler {
	return queries.NewGetCabinetLockersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInactiveLockersQueryHandler() queries.GetInactiveLockersQueryHandler {
	return queries.NewGetInactiveLockersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetLockerLogsQueryHandler() queries.GetLockerLogsQueryHandler {
	return queries.NewGetLockerLogsQueryHandler(lockerrepo.NewGormLockerLogRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetCabinetLockerLogsQueryHandler() queries.GetCabinetLockerLogsQueryHandler {
	return queries.NewGetCabinetLockerLogsQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetSlotAvailabilityQueryHandler() queries.GetSlotAvailabilityQueryHandler {
	return queries.NewGetSlotAvailabilityQueryHandler(c.CreateSlotAvailability())
}

func (c *CompositionRoot) CreateGetLockerStatusesQueryHandler() queries.GetLockerStatusesQueryHandler {
	return queries.NewGetLockerStatusesQueryHandler(classifierrepo.NewGormClassifierRepository(c.gormDB))
}

type FuncCabinetUoWFactory func() commands.CabinetUoW

func (f FuncCabinetUoWFactory) Create() commands.CabinetUoW {
	return f()
}

type FuncLockerUoWFactory func() commands.LockerUoW

func (f FuncLockerUoWFactory) Create() commands.LockerUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
