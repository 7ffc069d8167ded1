package commands_test

import (
	"context"
	"time"

	"lockerfleet/internal/core/application/usecases/commands"
	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/delivery"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"
	"lockerfleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type CabinetRepo struct{ mock.Mock }

func (m *CabinetRepo) Add(ctx context.Context, c *cabinet.Cabinet) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CabinetRepo) Update(ctx context.Context, c *cabinet.Cabinet) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CabinetRepo) Get(ctx context.Context, id kernel.UUID) (*cabinet.Cabinet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cabinet.Cabinet), args.Error(1)
}

func (m *CabinetRepo) GetByExternalID(ctx context.Context, externalID string) (*cabinet.Cabinet, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cabinet.Cabinet), args.Error(1)
}

func (m *CabinetRepo) GetAllActive(ctx context.Context) ([]*cabinet.Cabinet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cabinet.Cabinet), args.Error(1)
}

func (m *CabinetRepo) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CabinetLogRepo struct{ mock.Mock }

func (m *CabinetLogRepo) Add(ctx context.Context, entry *cabinet.Log) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *CabinetLogRepo) GetByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*cabinet.Log, error) {
	args := m.Called(ctx, cabinetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cabinet.Log), args.Error(1)
}

type LockerRepo struct{ mock.Mock }

func (m *LockerRepo) Add(ctx context.Context, l *locker.Locker) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *LockerRepo) Update(ctx context.Context, l *locker.Locker) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *LockerRepo) Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

func (m *LockerRepo) GetByExternalID(ctx context.Context, externalID string) (*locker.Locker, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

func (m *LockerRepo) GetByCabinetAndIndex(ctx context.Context, cabinetID kernel.UUID, index int) (*locker.Locker, error) {
	args := m.Called(ctx, cabinetID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

func (m *LockerRepo) GetAllByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*locker.Locker, error) {
	args := m.Called(ctx, cabinetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Locker), args.Error(1)
}

func (m *LockerRepo) GetAllWithStatusNot(ctx context.Context, status locker.Status) ([]*locker.Locker, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Locker), args.Error(1)
}

type LockerLogRepo struct{ mock.Mock }

func (m *LockerLogRepo) Add(ctx context.Context, entry *locker.Log) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *LockerLogRepo) GetByLocker(ctx context.Context, lockerID kernel.UUID) ([]*locker.Log, error) {
	args := m.Called(ctx, lockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Log), args.Error(1)
}

func (m *LockerLogRepo) GetByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*locker.Log, error) {
	args := m.Called(ctx, cabinetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Log), args.Error(1)
}

func (m *LockerLogRepo) CountByLocker(ctx context.Context, lockerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, lockerID)
	return args.Get(0).(int64), args.Error(1)
}

type DeliveryRepo struct{ mock.Mock }

func (m *DeliveryRepo) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *DeliveryRepo) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *DeliveryRepo) GetOvertime(ctx context.Context, now time.Time) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *DeliveryRepo) CountForSlotOnDay(ctx context.Context, day kernel.Day, configID kernel.UUID) (int, error) {
	args := m.Called(ctx, day, configID)
	return args.Int(0), args.Error(1)
}

type OrderRepo struct{ mock.Mock }

func (m *OrderRepo) Get(ctx context.Context, id kernel.UUID) (*delivery.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Order), args.Error(1)
}

type OrderSync struct{ mock.Mock }

func (m *OrderSync) NotifyHandoverChanged(ctx context.Context, order *delivery.Order, d *delivery.Delivery) error {
	args := m.Called(ctx, order, d)
	return args.Error(0)
}

type FleetUnitOfWork struct{ mock.Mock }

func (m *FleetUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *FleetUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *FleetUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *FleetUnitOfWork) CabinetRepository() ports.CabinetRepository {
	args := m.Called()
	return args.Get(0).(ports.CabinetRepository)
}

func (m *FleetUnitOfWork) CabinetLogRepository() ports.CabinetLogRepository {
	args := m.Called()
	return args.Get(0).(ports.CabinetLogRepository)
}

func (m *FleetUnitOfWork) LockerRepository() ports.LockerRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerRepository)
}

func (m *FleetUnitOfWork) LockerLogRepository() ports.LockerLogRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerLogRepository)
}

type FleetUoWFactory struct{ mock.Mock }

func (m *FleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

type LockerUnitOfWork struct{ mock.Mock }

func (m *LockerUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *LockerUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *LockerUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *LockerUnitOfWork) LockerRepository() ports.LockerRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerRepository)
}

func (m *LockerUnitOfWork) LockerLogRepository() ports.LockerLogRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerLogRepository)
}

type LockerUoWFactory struct{ mock.Mock }

func (m *LockerUoWFactory) Create() commands.LockerUoW {
	args := m.Called()
	return args.Get(0).(commands.LockerUoW)
}

type CabinetUnitOfWork struct{ mock.Mock }

func (m *CabinetUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CabinetUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CabinetUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CabinetUnitOfWork) CabinetRepository() ports.CabinetRepository {
	args := m.Called()
	return args.Get(0).(ports.CabinetRepository)
}

type CabinetUoWFactory struct{ mock.Mock }

func (m *CabinetUoWFactory) Create() commands.CabinetUoW {
	args := m.Called()
	return args.Get(0).(commands.CabinetUoW)
}

type DeliveryUnitOfWork struct{ mock.Mock }

func (m *DeliveryUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *DeliveryUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *DeliveryUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *DeliveryUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type DeliveryUoWFactory struct{ mock.Mock }

func (m *DeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}
