package ports

import (
	"context"
	"time"

	"lockerfleet/internal/core/domain/model/delivery"
	"lockerfleet/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for deliveries.
type DeliveryRepository interface {
	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetOvertime retrieves all deliveries for which delivery.IsOvertime
	// holds at the given instant, that is, whose handover window has
	// fully elapsed without being closed out.
	GetOvertime(ctx context.Context, now time.Time) ([]*delivery.Delivery, error)

	// CountForSlotOnDay reports how many confirmed deliveries are bound to
	// a slot configuration on a given day. The availability engine uses
	// this as its capacity collaborator.
	CountForSlotOnDay(ctx context.Context, day kernel.Day, configID kernel.UUID) (int, error)
}

// OrderRepository provides read access to the sales orders behind
// deliveries. Orders are owned by the commerce platform.
type OrderRepository interface {
	// Get retrieves an order reference by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Order, error)
}
