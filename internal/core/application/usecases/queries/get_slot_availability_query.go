// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries return optimized read models for specific use
// cases.
package queries

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/timeslot"
	"lockerfleet/internal/pkg/guard"
)

var ErrGetSlotAvailabilityQueryIsNotConstructed = errors.New(
	"GetSlotAvailabilityQuery must be created via NewGetSlotAvailabilityQuery constructor",
)

// GetSlotAvailabilityQuery retrieves the bookable delivery windows of one
// cabinet over a horizon of consecutive days starting today.
//
// Example:
//
//	query, err := NewGetSlotAvailabilityQuery(cabinetID, 7)
//	if err != nil {
//	    return fmt.Errorf("invalid availability query: %w", err)
//	}
//
//	days, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute availability: %w", err)
//	}
type GetSlotAvailabilityQuery struct {
	cabinetID kernel.UUID
	days      int

	guard guard.ConstructorGuard
}

// NewGetSlotAvailabilityQuery creates an availability query. days of zero
// or less is accepted and yields an empty result.
func NewGetSlotAvailabilityQuery(cabinetID kernel.UUID, days int) (GetSlotAvailabilityQuery, error) {
	if err := cabinetID.Validate(); err != nil {
		return GetSlotAvailabilityQuery{}, err
	}

	return GetSlotAvailabilityQuery{
		cabinetID: cabinetID,
		days:      days,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSlotAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetSlotAvailabilityQueryIsNotConstructed)
}

// CabinetID returns the queried cabinet's identifier.
func (q GetSlotAvailabilityQuery) CabinetID() kernel.UUID {
	return q.cabinetID
}

// Days returns the horizon length in days.
func (q GetSlotAvailabilityQuery) Days() int {
	return q.days
}

// SlotInstanceResponse is one concrete delivery window on one day.
type SlotInstanceResponse struct {
	ConfigID  kernel.UUID
	StartTime kernel.ClockOffset
	EndTime   kernel.ClockOffset
	Fee       string
	Status    string
}

// DayAvailabilityResponse holds the slot instances of one calendar day in
// start-time order.
type DayAvailabilityResponse struct {
	Date  kernel.Day
	Slots []SlotInstanceResponse
}

func instanceToResponse(slot timeslot.Instance) SlotInstanceResponse {
	return SlotInstanceResponse{
		ConfigID:  slot.ConfigID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Fee:       slot.DeliveryFee.String(),
		Status:    slot.Status.Key(),
	}
}
