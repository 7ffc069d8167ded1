// Package timeslotrepo provides a read-only persistence adapter for the
// recurring delivery window definitions of cabinets. Slot configurations
// are managed by the commerce platform; the fleet only reads them.
package timeslotrepo

import (
	"context"
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/timeslot"
	"lockerfleet/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TimeSlotConfigDTO represents the database structure of slot
// configurations. Times are stored as millisecond offsets from midnight
// in the fleet's operating time zone.
type TimeSlotConfigDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CabinetID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	RouteVersionID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartTimeMillis      int64           `gorm:"type:bigint;not null"`
	EndTimeMillis        int64           `gorm:"type:bigint;not null"`
	PickingStartsAtMillis int64          `gorm:"type:bigint;not null"`
	MaxOrders            int             `gorm:"type:int;not null"`
	DeliveryFee          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName overrides GORM's default naming to use "time_slot_configs".
func (TimeSlotConfigDTO) TableName() string {
	return "time_slot_configs"
}

func toDomain(dto TimeSlotConfigDTO) (*timeslot.Config, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cabinetID, err := kernel.UUIDFromBytes(dto.CabinetID[:])
	if err != nil {
		return nil, err
	}

	routeVersionID, err := kernel.UUIDFromBytes(dto.RouteVersionID[:])
	if err != nil {
		return nil, err
	}

	fee, err := timeslot.NewFee(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	return timeslot.NewConfig(
		id,
		cabinetID,
		routeVersionID,
		kernel.ClockOffsetFromMillis(dto.StartTimeMillis),
		kernel.ClockOffsetFromMillis(dto.EndTimeMillis),
		kernel.ClockOffsetFromMillis(dto.PickingStartsAtMillis),
		dto.MaxOrders,
		fee,
	)
}

// GormTimeSlotConfigRepository implements TimeSlotConfigRepository using
// GORM.
type GormTimeSlotConfigRepository struct {
	db *gorm.DB
}

// NewGormTimeSlotConfigRepository creates a new GORM slot configuration
// repository.
func NewGormTimeSlotConfigRepository(db *gorm.DB) *GormTimeSlotConfigRepository {
	return &GormTimeSlotConfigRepository{db: db}
}

// Get retrieves a slot configuration by ID.
func (r *GormTimeSlotConfigRepository) Get(ctx context.Context, id kernel.UUID) (*timeslot.Config, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TimeSlotConfigDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("timeSlotConfig", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCabinetOrderedByStart retrieves all slot configurations of a
// cabinet in start-time order.
func (r *GormTimeSlotConfigRepository) GetByCabinetOrderedByStart(ctx context.Context, cabinetID kernel.UUID) ([]*timeslot.Config, error) {
	if err := cabinetID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TimeSlotConfigDTO
	if err := r.db.WithContext(ctx).
		Where("cabinet_id = ?", cabinetID.Bytes()).
		Order("start_time_millis").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	configs := make([]*timeslot.Config, 0, len(dtos))
	for _, dto := range dtos {
		cfg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, nil
}
