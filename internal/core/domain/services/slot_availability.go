package services

import (
	"context"
	"errors"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/route"
	"lockerfleet/internal/core/domain/model/timeslot"
)

// ErrRouteVersionNotFound is returned when a slot configuration references
// a route version that cannot be resolved.
var ErrRouteVersionNotFound = errors.New("route version not found")

// SlotConfigProvider supplies the recurring slot configurations of one
// cabinet, ordered by start time ascending.
type SlotConfigProvider interface {
	GetByCabinetOrderedByStart(ctx context.Context, cabinetID kernel.UUID) ([]*timeslot.Config, error)
}

// RouteVersionProvider resolves the route version gating a slot
// configuration.
type RouteVersionProvider interface {
	GetVersion(ctx context.Context, versionID kernel.UUID) (*route.Version, error)
}

// DeliveryCounter reports how many confirmed deliveries are already bound
// to a slot configuration on a given day.
type DeliveryCounter interface {
	CountForSlotOnDay(ctx context.Context, day kernel.Day, configID kernel.UUID) (int, error)
}

// SlotAvailability computes, for a cabinet and a horizon of consecutive
// days, which slot instances can still be booked.
//
// The per-instance decision is evaluated strictly in order:
//  1. The day is today, the booking cutoff has passed, and the governing
//     route version is not active for the day: the slot is unavailable
//     because its fulfillment route is already being picked.
//  2. The confirmed delivery count has reached capacity, or the cutoff has
//     passed and the day is not in the future: the slot is unavailable.
//  3. Otherwise the slot is available.
//
// The ordering matters: both route validity and capacity can disqualify a
// slot independently, and the first matching rule determines the status.
type SlotAvailability struct {
	configs  SlotConfigProvider
	versions RouteVersionProvider
	counter  DeliveryCounter
	clock    kernel.Clock
	location *time.Location
}

// NewSlotAvailability creates the availability engine. location is the
// fleet's operating time zone; all day bucketing uses it.
func NewSlotAvailability(
	configs SlotConfigProvider,
	versions RouteVersionProvider,
	counter DeliveryCounter,
	clock kernel.Clock,
	location *time.Location,
) *SlotAvailability {
	return &SlotAvailability{
		configs:  configs,
		versions: versions,
		counter:  counter,
		clock:    clock,
		location: location,
	}
}

// ForPeriod returns one bucket per calendar day, starting today, each
// holding the cabinet's slot instances in start-time order. days of zero
// or less yields an empty sequence rather than an error.
func (s *SlotAvailability) ForPeriod(ctx context.Context, cabinetID kernel.UUID, days int) ([]timeslot.DaySlots, error) {
	if days <= 0 {
		return []timeslot.DaySlots{}, nil
	}

	configs, err := s.configs.GetByCabinetOrderedByStart(ctx, cabinetID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().In(s.location)
	today := kernel.DayOf(now, s.location)
	timeOfDay := kernel.ClockOffsetOf(now, s.location)

	result := make([]timeslot.DaySlots, 0, days)
	for i := range days {
		day := today.AddDays(i)
		slots := make([]timeslot.Instance, 0, len(configs))

		for _, cfg := range configs {
			status, err := s.evaluate(ctx, cfg, day, today, timeOfDay)
			if err != nil {
				return nil, err
			}
			slots = append(slots, cfg.Project(status))
		}

		result = append(result, timeslot.DaySlots{Day: day, Slots: slots})
	}

	return result, nil
}

// NextBookable scans today's instances of the cabinet in start order and
// returns the first available one whose start has not yet passed. An
// instance starting exactly now is still bookable. The second return
// value is false when no such instance exists today.
func (s *SlotAvailability) NextBookable(ctx context.Context, cabinetID kernel.UUID) (timeslot.Instance, bool, error) {
	buckets, err := s.ForPeriod(ctx, cabinetID, 1)
	if err != nil {
		return timeslot.Instance{}, false, err
	}
	if len(buckets) == 0 {
		return timeslot.Instance{}, false, nil
	}

	timeOfDay := kernel.ClockOffsetOf(s.clock.Now().In(s.location), s.location)
	for _, slot := range buckets[0].Slots {
		if slot.StartTime.Duration() < timeOfDay.Duration() {
			continue
		}
		if slot.IsAvailable() {
			return slot, true, nil
		}
	}
	return timeslot.Instance{}, false, nil
}

func (s *SlotAvailability) evaluate(
	ctx context.Context,
	cfg *timeslot.Config,
	day, today kernel.Day,
	timeOfDay kernel.ClockOffset,
) (timeslot.Status, error) {
	cutoffPassed := timeOfDay.Duration() > cfg.PickingStartsAt().Duration()

	if day.Equal(today) && cutoffPassed {
		active, err := s.routeActive(ctx, cfg.RouteVersionID(), day)
		if err != nil {
			return timeslot.StatusUnknown, err
		}
		if !active {
			return timeslot.StatusUnavailable, nil
		}
	}

	count, err := s.counter.CountForSlotOnDay(ctx, day, cfg.ID())
	if err != nil {
		return timeslot.StatusUnknown, err
	}
	if count >= cfg.MaxOrders() || (cutoffPassed && !day.After(today)) {
		return timeslot.StatusUnavailable, nil
	}

	return timeslot.StatusAvailable, nil
}

func (s *SlotAvailability) routeActive(ctx context.Context, versionID kernel.UUID, day kernel.Day) (bool, error) {
	version, err := s.versions.GetVersion(ctx, versionID)
	if err != nil {
		return false, err
	}
	if version == nil {
		return false, ErrRouteVersionNotFound
	}
	return version.ActiveOn(day)
}
