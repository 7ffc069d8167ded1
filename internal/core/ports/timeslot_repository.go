package ports

import (
	"context"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/timeslot"
)

// TimeSlotConfigRepository provides access to the recurring delivery
// window definitions of cabinets.
type TimeSlotConfigRepository interface {
	// Get retrieves a slot configuration by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*timeslot.Config, error)

	// GetByCabinetOrderedByStart retrieves all slot configurations of a
	// cabinet ordered by start time ascending. The availability engine
	// relies on this ordering to produce instances in slot order.
	GetByCabinetOrderedByStart(ctx context.Context, cabinetID kernel.UUID) ([]*timeslot.Config, error)
}
