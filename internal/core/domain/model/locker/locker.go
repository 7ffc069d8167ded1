package locker

import (
	"errors"
	"math"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/guard"
)

// ErrLockerIsNotConstructed is returned when a Locker instance was not
// created through NewLocker or RestoreLocker.
var ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker or RestoreLocker")

// Locker is one individually addressable compartment within a cabinet.
//
// A locker carries three independent status axes:
//   - the operational axis (Status): active or inactive
//   - the maintenance axis (Maintenance): cleaning/repair workflow states
//   - the temp-mode axis (TempMode): thermal and other open-set states
//
// The axes are reconciled from two sources: periodic hardware events from
// the terminal platform and manual operator updates. Every observable
// change is recorded as an append-only Log row; the reconciliation logic
// here decides when a change is observable.
//
// Lockers reference their cabinet by identifier only; the relation is
// resolved through repository lookups, never an embedded pointer, so
// deletion and lifetime rules stay explicit.
type Locker struct {
	id         kernel.UUID
	cabinetID  kernel.UUID
	externalID string

	// index is the 1-based position within the cabinet, unique among
	// non-deleted lockers of that cabinet.
	index int

	status      Status
	maintenance Maintenance
	tempMode    TempMode
	comment     string

	// thermoMode is the raw thermal reading reported by the hardware.
	thermoMode int

	guard guard.ConstructorGuard
}

// NewLocker creates a locker for a cabinet at the given 1-based index.
// New lockers start active with no maintenance or temp-mode state.
func NewLocker(id, cabinetID kernel.UUID, externalID string, index int) (*Locker, error) {
	l := &Locker{
		status: StatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setCabinetID(cabinetID),
		l.setIndex(index),
	); err != nil {
		return nil, err
	}

	l.externalID = externalID
	return l, nil
}

// RestoreLocker reconstructs a locker from its persisted state.
func RestoreLocker(
	id, cabinetID kernel.UUID,
	externalID string,
	index int,
	status Status,
	maintenance Maintenance,
	tempMode TempMode,
	comment string,
	thermoMode int,
) (*Locker, error) {
	l := &Locker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setCabinetID(cabinetID),
		l.setIndex(index),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	l.externalID = externalID
	l.maintenance = maintenance
	l.tempMode = tempMode
	l.comment = comment
	l.thermoMode = thermoMode
	return l, nil
}

// Validate ensures the Locker was created through a constructor.
func (l *Locker) Validate() error {
	if l == nil {
		return ErrLockerIsNotConstructed
	}
	return l.guard.Validate(ErrLockerIsNotConstructed)
}

// ID returns the locker's unique identifier.
func (l *Locker) ID() kernel.UUID {
	return l.id
}

// CabinetID returns the identifier of the owning cabinet.
func (l *Locker) CabinetID() kernel.UUID {
	return l.cabinetID
}

// ExternalID returns the terminal platform identifier of the box.
func (l *Locker) ExternalID() string {
	return l.externalID
}

// Index returns the 1-based position within the cabinet.
func (l *Locker) Index() int {
	return l.index
}

// Status returns the operational axis.
func (l *Locker) Status() Status {
	return l.status
}

// Maintenance returns the maintenance axis.
func (l *Locker) Maintenance() Maintenance {
	return l.maintenance
}

// TempMode returns the temp-mode axis.
func (l *Locker) TempMode() TempMode {
	return l.tempMode
}

// Comment returns the free-text operator comment.
func (l *Locker) Comment() string {
	return l.comment
}

// ThermoMode returns the last thermal reading reported by the hardware.
func (l *Locker) ThermoMode() int {
	return l.thermoMode
}

// ApplyBoxState reconciles the locker against a hardware box report.
// The operational status follows the disabled flag; the thermal reading is
// taken over unconditionally. Reports whether the operational status
// changed, which is the signal for the caller to append an audit row.
func (l *Locker) ApplyBoxState(disabled bool, thermoMode int) bool {
	newStatus := StatusFromDisabled(disabled)
	changed := newStatus != l.status
	l.status = newStatus
	l.thermoMode = thermoMode
	return changed
}

// ApplyLog applies a manual-update audit row to the locker state.
//
// The comment is taken over as written. The operational status collapses to
// StatusInactive for any log status other than exactly StatusActive; this
// matches the historical behavior of the fleet backend, where a
// maintenance or temp-mode update carrying over a non-active status also
// deactivates the locker. The maintenance and temp-mode axes are updated
// only when the log row recorded a change on them.
func (l *Locker) ApplyLog(entry *Log) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	l.comment = entry.Comment()
	if st := entry.Status(); st != nil && *st == StatusActive {
		l.status = StatusActive
	} else {
		l.status = StatusInactive
	}
	if m := entry.Maintenance(); m != nil {
		l.maintenance = *m
	}
	if tm := entry.TempMode(); tm != nil {
		l.tempMode = *tm
	}
	return nil
}

// IsEqual compares two lockers by identifier.
func (l *Locker) IsEqual(other *Locker) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Locker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Locker) setCabinetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.cabinetID = id
	return nil
}

func (l *Locker) setIndex(index int) error {
	if index < 1 {
		return errs.NewValueIsOutOfRangeError("index", index, 1, math.MaxInt)
	}
	l.index = index
	return nil
}

func (l *Locker) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}
