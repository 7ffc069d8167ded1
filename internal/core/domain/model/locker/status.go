package locker

import (
	"fmt"

	"lockerfleet/internal/pkg/errs"
)

// Status represents the operational axis of a locker: whether the
// compartment can take part in deliveries at all. It is one of three
// independent status axes; maintenance and temp-mode states live alongside
// it without affecting it.
//
// Status is a value object validated at the system boundary: external
// events and operator updates arrive as classifier keys and are parsed
// into this closed enumeration.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusActive means the locker participates in deliveries.
	StatusActive

	// StatusInactive means the locker is withdrawn from deliveries,
	// either by hardware report or by operator decision.
	StatusInactive
)

// Classifier keys for the operational axis as used by the terminal
// platform and the classifier table.
const (
	StatusActiveKey   = "LOCKER_STATE_ACTIVE"
	StatusInactiveKey = "LOCKER_STATE_INACTIVE"
)

func getStatusKeys() map[Status]string {
	return map[Status]string{
		StatusActive:   StatusActiveKey,
		StatusInactive: StatusInactiveKey,
	}
}

// ParseStatus maps a classifier key onto the operational axis. Only the two
// exact operational keys parse; everything else reports false.
func ParseStatus(key string) (Status, bool) {
	switch key {
	case StatusActiveKey:
		return StatusActive, true
	case StatusInactiveKey:
		return StatusInactive, true
	default:
		return StatusUnknown, false
	}
}

// StatusFromDisabled derives the operational status from a hardware
// disabled flag.
func StatusFromDisabled(disabled bool) Status {
	if disabled {
		return StatusInactive
	}
	return StatusActive
}

// Validate checks that the status is one of the closed set of valid values.
func (s Status) Validate() error {
	if _, ok := getStatusKeys()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid locker status", s))
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

// Maintenance represents the maintenance axis of a locker. The zero value
// means no maintenance state is recorded.
type Maintenance int

const (
	// MaintenanceNone means the locker carries no maintenance state.
	MaintenanceNone Maintenance = iota

	// MaintenanceNeedsAttention flags the locker for an operator to look at.
	MaintenanceNeedsAttention

	// MaintenanceNeedsRepairing flags a defect awaiting a repair visit.
	MaintenanceNeedsRepairing

	// MaintenanceNeedsCleaning flags the locker for cleaning.
	MaintenanceNeedsCleaning

	// MaintenanceInCleaning means cleaning is in progress.
	MaintenanceInCleaning

	// MaintenanceInRepairing means a repair is in progress.
	MaintenanceInRepairing
)

// Classifier keys for the maintenance axis.
const (
	MaintenanceNeedsAttentionKey = "LOCKER_STATE_NEEDS_ATTENTION"
	MaintenanceNeedsRepairingKey = "LOCKER_STATE_NEEDS_REPAIRING"
	MaintenanceNeedsCleaningKey  = "LOCKER_STATE_NEEDS_CLEANING"
	MaintenanceInCleaningKey     = "LOCKER_STATE_IN_CLEANING"
	MaintenanceInRepairingKey    = "LOCKER_STATE_IN_REPAIRING"
)

func getMaintenanceKeys() map[Maintenance]string {
	return map[Maintenance]string{
		MaintenanceNeedsAttention: MaintenanceNeedsAttentionKey,
		MaintenanceNeedsRepairing: MaintenanceNeedsRepairingKey,
		MaintenanceNeedsCleaning:  MaintenanceNeedsCleaningKey,
		MaintenanceInCleaning:     MaintenanceInCleaningKey,
		MaintenanceInRepairing:    MaintenanceInRepairingKey,
	}
}

// ParseMaintenance maps a classifier key onto the maintenance axis.
// Reports false for any key outside the five maintenance keys; callers use
// that to route the key to the temp-mode axis instead.
func ParseMaintenance(key string) (Maintenance, bool) {
	for m, k := range getMaintenanceKeys() {
		if k == key {
			return m, true
		}
	}
	return MaintenanceNone, false
}

// Key returns the classifier key for the maintenance state, or an empty
// string for MaintenanceNone and invalid values.
func (m Maintenance) Key() string {
	return getMaintenanceKeys()[m]
}

// String implements fmt.Stringer using the classifier key.
func (m Maintenance) String() string {
	if key, ok := getMaintenanceKeys()[m]; ok {
		return key
	}
	return "None"
}

// TempMode is the thermal/temp-mode axis. Unlike the other two axes it is
// an open set: any classifier key that is not an operational or
// maintenance key lands here, so it stays a string. The empty value means
// no temp-mode state is recorded.
type TempMode string

// IsSet reports whether the axis carries a value.
func (t TempMode) IsSet() bool {
	return t != ""
}
