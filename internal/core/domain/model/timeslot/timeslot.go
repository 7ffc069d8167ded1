// Package timeslot models recurring delivery windows and their per-day
// availability projection.
//
// A Config is the persistent, recurring definition: wall-clock offsets
// within a day plus capacity, fee, and the route version gating it. An
// Instance is the ephemeral projection of one Config onto one concrete
// calendar day, carrying a computed availability status. Instances are
// never persisted; they are recomputed on every query.
package timeslot

import (
	"errors"
	"fmt"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/guard"
)

// ErrConfigIsNotConstructed is returned when a Config instance was not
// created through NewConfig.
var ErrConfigIsNotConstructed = errors.New("Config must be created via NewConfig")

// Config is a recurring delivery window for a cabinet.
type Config struct {
	id             kernel.UUID
	cabinetID      kernel.UUID
	routeVersionID kernel.UUID

	startTime       kernel.ClockOffset
	endTime         kernel.ClockOffset
	pickingStartsAt kernel.ClockOffset

	maxOrders   int
	deliveryFee Fee

	guard guard.ConstructorGuard
}

// NewConfig creates a slot configuration. pickingStartsAt is the cutoff
// offset: once the wall clock passes it, the slot can no longer be booked
// for the current day.
func NewConfig(
	id, cabinetID, routeVersionID kernel.UUID,
	startTime, endTime, pickingStartsAt kernel.ClockOffset,
	maxOrders int,
	deliveryFee Fee,
) (*Config, error) {
	if err := errors.Join(id.Validate(), cabinetID.Validate(), routeVersionID.Validate()); err != nil {
		return nil, err
	}
	if maxOrders < 0 {
		return nil, errs.NewValueIsInvalidError("maxOrders")
	}

	return &Config{
		id:              id,
		cabinetID:       cabinetID,
		routeVersionID:  routeVersionID,
		startTime:       startTime,
		endTime:         endTime,
		pickingStartsAt: pickingStartsAt,
		maxOrders:       maxOrders,
		deliveryFee:     deliveryFee,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Config was created through its constructor.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigIsNotConstructed
	}
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// ID returns the configuration's unique identifier.
func (c *Config) ID() kernel.UUID { return c.id }

// CabinetID returns the cabinet the window belongs to.
func (c *Config) CabinetID() kernel.UUID { return c.cabinetID }

// RouteVersionID returns the route version whose validity gates the slot.
func (c *Config) RouteVersionID() kernel.UUID { return c.routeVersionID }

// StartTime returns the handover window start offset.
func (c *Config) StartTime() kernel.ClockOffset { return c.startTime }

// EndTime returns the handover window end offset.
func (c *Config) EndTime() kernel.ClockOffset { return c.endTime }

// PickingStartsAt returns the booking cutoff offset.
func (c *Config) PickingStartsAt() kernel.ClockOffset { return c.pickingStartsAt }

// MaxOrders returns the per-day booking capacity.
func (c *Config) MaxOrders() int { return c.maxOrders }

// DeliveryFee returns the fee charged for the window.
func (c *Config) DeliveryFee() Fee { return c.deliveryFee }

// Project creates the instance of this configuration for one concrete day
// with the given computed status.
func (c *Config) Project(status Status) Instance {
	return Instance{
		ConfigID:    c.id,
		DeliveryFee: c.deliveryFee,
		StartTime:   c.startTime,
		EndTime:     c.endTime,
		Status:      status,
	}
}

// Instance is one concrete-day occurrence of a Config with computed
// availability. It is a read model: exported fields, no behavior beyond
// convenience predicates, never persisted.
type Instance struct {
	ConfigID    kernel.UUID
	DeliveryFee Fee
	StartTime   kernel.ClockOffset
	EndTime     kernel.ClockOffset
	Status      Status
}

// IsAvailable reports whether the instance can still be booked.
func (i Instance) IsAvailable() bool {
	return i.Status == StatusAvailable
}

// DaySlots groups the instances of one calendar day, ordered by start
// time ascending.
type DaySlots struct {
	Day   kernel.Day
	Slots []Instance
}

// Status is the computed availability of an Instance.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means a customer may still book the instance.
	StatusAvailable

	// StatusUnavailable means the instance is full, past its cutoff, or
	// its governing route version is no longer valid.
	StatusUnavailable
)

// Classifier keys for slot availability.
const (
	StatusAvailableKey   = "TIME_SLOT_STATUS_AVAILABLE"
	StatusUnavailableKey = "TIME_SLOT_STATUS_UNAVAILABLE"
)

func getStatusKeys() map[Status]string {
	return map[Status]string{
		StatusAvailable:   StatusAvailableKey,
		StatusUnavailable: StatusUnavailableKey,
	}
}

// Validate checks that the status is one of the closed set of valid values.
func (s Status) Validate() error {
	if _, ok := getStatusKeys()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid slot status", s))
	}
	return nil
}

// Key returns the classifier key for the status, or an empty string for
// invalid values.
func (s Status) Key() string {
	return getStatusKeys()[s]
}

// String implements fmt.Stringer using the classifier key.
func (s Status) String() string {
	if key, ok := getStatusKeys()[s]; ok {
		return key
	}
	return "Unknown"
}
