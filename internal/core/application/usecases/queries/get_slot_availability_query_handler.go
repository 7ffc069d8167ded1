package queries

import (
	"context"

	"lockerfleet/internal/core/domain/services"
)

// GetSlotAvailabilityQueryHandler projects the availability engine's
// result into the read model. Unlike the other query handlers it does not
// query the database directly: availability is a computed view, not a
// stored one.
type GetSlotAvailabilityQueryHandler struct {
	availability *services.SlotAvailability
}

// NewGetSlotAvailabilityQueryHandler creates a handler over the
// availability engine.
func NewGetSlotAvailabilityQueryHandler(availability *services.SlotAvailability) GetSlotAvailabilityQueryHandler {
	return GetSlotAvailabilityQueryHandler{availability: availability}
}

// Handle computes the day buckets for the queried cabinet and horizon.
func (h GetSlotAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetSlotAvailabilityQuery,
) ([]DayAvailabilityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	days, err := h.availability.ForPeriod(ctx, query.CabinetID(), query.Days())
	if err != nil {
		return nil, err
	}

	result := make([]DayAvailabilityResponse, 0, len(days))
	for _, bucket := range days {
		slots := make([]SlotInstanceResponse, 0, len(bucket.Slots))
		for _, slot := range bucket.Slots {
			slots = append(slots, instanceToResponse(slot))
		}
		result = append(result, DayAvailabilityResponse{
			Date:  bucket.Day,
			Slots: slots,
		})
	}

	return result, nil
}
