package cabinet

import (
	"fmt"

	"lockerfleet/internal/pkg/errs"
)

// Status represents the operational state of a cabinet. Cabinets have a
// single binary axis, driven by the terminal platform's deleted flag.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the cabinet is in service.
	StatusActive

	// StatusInactive means the terminal platform reports the cabinet as
	// removed, or an operator has taken it out of service.
	StatusInactive
)

// Classifier keys for the cabinet status axis.
const (
	StatusActiveKey   = "CABINET_STATUS_ACTIVE"
	StatusInactiveKey = "CABINET_STATUS_INACTIVE"
)

func getStatusKeys() map[Status]string {
	return map[Status]string{
		StatusActive:   StatusActiveKey,
		StatusInactive: StatusInactiveKey,
	}
}

// ParseStatus maps a classifier key onto the cabinet status axis.
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

// StatusFromDeleted derives the cabinet status from the terminal
// platform's deleted flag.
func StatusFromDeleted(deleted bool) Status {
	if deleted {
		return StatusInactive
	}
	return StatusActive
}

// Validate checks that the status is one of the closed set of valid values.
func (s Status) Validate() error {
	if _, ok := getStatusKeys()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid cabinet status", s))
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
