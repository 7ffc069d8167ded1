package postgres

import (
	"fmt"

	"lockerfleet/internal/adapters/out/postgres/cabinetrepo"
	"lockerfleet/internal/adapters/out/postgres/classifierrepo"
	"lockerfleet/internal/adapters/out/postgres/deliveryrepo"
	"lockerfleet/internal/adapters/out/postgres/lockerrepo"
	"lockerfleet/internal/adapters/out/postgres/routerepo"
	"lockerfleet/internal/adapters/out/postgres/timeslotrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the fleet schema. Idempotent; intended to run
// once at startup.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&cabinetrepo.CabinetDTO{},
		&cabinetrepo.CabinetLogDTO{},
		&lockerrepo.LockerDTO{},
		&lockerrepo.LockerLogDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.OrderDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StoreDTO{},
		&routerepo.RouteVersionDTO{},
		&routerepo.RouteVersionCabinetDTO{},
		&classifierrepo.ClassifierDTO{},
		&timeslotrepo.TimeSlotConfigDTO{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate fleet schema: %w", err)
	}

	return nil
}
