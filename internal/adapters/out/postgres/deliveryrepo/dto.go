// Package deliveryrepo provides data transfer objects and mapping
// functions for delivery and order persistence.
package deliveryrepo

import (
	"time"

	"lockerfleet/internal/core/domain/model/delivery"
	"lockerfleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// A delivery binds one order to a handover window on a cabinet's slot.
type DeliveryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CabinetID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TimeSlotConfigID uuid.UUID `gorm:"type:uuid;not null;index"`
	HandoverFrom     time.Time `gorm:"not null;index"`
	HandoverTo       time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// OrderDTO is the local read model of sales orders owned by the commerce
// platform. The fleet only reads it.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"type:varchar(64);not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               d.ID().Bytes(),
		OrderID:          d.OrderID().Bytes(),
		CabinetID:        d.CabinetID().Bytes(),
		TimeSlotConfigID: d.ConfigID().Bytes(),
		HandoverFrom:     d.HandoverFrom(),
		HandoverTo:       d.HandoverTo(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	cabinetID, err := kernel.UUIDFromBytes(dto.CabinetID[:])
	if err != nil {
		return nil, err
	}

	configID, err := kernel.UUIDFromBytes(dto.TimeSlotConfigID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, cabinetID, configID, dto.HandoverFrom, dto.HandoverTo), nil
}

func orderToDomain(dto OrderDTO) (*delivery.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.NewOrder(id, dto.Number)
}
