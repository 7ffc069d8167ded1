package locker

import (
	"errors"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

// ErrLogIsNotConstructed is returned when a Log instance was not created
// through one of the log constructors.
var ErrLogIsNotConstructed = errors.New("Log must be created via NewStatusChangeLog or NewLogFromManualUpdate")

// ManualUpdate is an operator's status update as it arrives at the system
// boundary: a free-text classifier key plus an optional comment.
type ManualUpdate struct {
	StatusKey string
	Comment   string
}

// Log is one immutable audit row for a locker. A row records which of the
// three status axes changed (the non-nil fields), the new values, an
// optional operator comment, and two timestamps: local receipt time and an
// externally supplied event time that falls back to receipt time when the
// source did not provide one.
//
// Rows are write-once; no update or delete path exists.
type Log struct {
	id        kernel.UUID
	lockerID  kernel.UUID
	cabinetID kernel.UUID

	status      *Status
	maintenance *Maintenance
	tempMode    *TempMode

	comment      string
	createdAt    time.Time
	extCreatedAt time.Time

	guard guard.ConstructorGuard
}

// NewStatusChangeLog creates the audit row for an operational status
// transition observed from a hardware event. Only the operational axis is
// recorded. extCreatedAt is the event's own timestamp; pass the receipt
// time when the event carried none.
func NewStatusChangeLog(
	id kernel.UUID,
	l *Locker,
	newStatus Status,
	receivedAt time.Time,
	extCreatedAt time.Time,
) (*Log, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}

	entry := newLog(id, l, receivedAt, extCreatedAt)
	entry.status = &newStatus
	return entry, nil
}

// NewLogFromManualUpdate builds the audit row for a manual operator update.
//
// The operational field of the row carries the update's key only when it is
// exactly the active or inactive key; any other key leaves the operational
// axis at the locker's current status. Independently, the key is routed to
// the maintenance axis when it is one of the five maintenance keys and to
// the temp-mode axis otherwise. The routing is an exhaustive either/or, so
// even an empty key lands on the temp-mode axis.
func NewLogFromManualUpdate(
	id kernel.UUID,
	l *Locker,
	update ManualUpdate,
	receivedAt time.Time,
) (*Log, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	entry := newLog(id, l, receivedAt, receivedAt)
	entry.comment = update.Comment

	status, isOperationalKey := ParseStatus(update.StatusKey)
	if !isOperationalKey {
		status = l.Status()
	}
	entry.status = &status

	if m, isMaintenanceKey := ParseMaintenance(update.StatusKey); isMaintenanceKey {
		entry.maintenance = &m
	} else {
		tm := TempMode(update.StatusKey)
		entry.tempMode = &tm
	}

	return entry, nil
}

// RestoreLog reconstructs a log row from its persisted state.
func RestoreLog(
	id, lockerID, cabinetID kernel.UUID,
	status *Status,
	maintenance *Maintenance,
	tempMode *TempMode,
	comment string,
	createdAt, extCreatedAt time.Time,
) (*Log, error) {
	if err := errors.Join(id.Validate(), lockerID.Validate(), cabinetID.Validate()); err != nil {
		return nil, err
	}

	return &Log{
		id:           id,
		lockerID:     lockerID,
		cabinetID:    cabinetID,
		status:       status,
		maintenance:  maintenance,
		tempMode:     tempMode,
		comment:      comment,
		createdAt:    createdAt,
		extCreatedAt: normalizeExtCreatedAt(extCreatedAt, createdAt),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func newLog(id kernel.UUID, l *Locker, receivedAt, extCreatedAt time.Time) *Log {
	return &Log{
		id:           id,
		lockerID:     l.ID(),
		cabinetID:    l.CabinetID(),
		createdAt:    receivedAt,
		extCreatedAt: normalizeExtCreatedAt(extCreatedAt, receivedAt),
		guard:        guard.NewConstructorGuard(),
	}
}

// normalizeExtCreatedAt applies the fallback rule: a missing external event
// time defaults to the local receipt time.
func normalizeExtCreatedAt(ext, receivedAt time.Time) time.Time {
	if ext.IsZero() {
		return receivedAt
	}
	return ext
}

// Validate ensures the Log was created through a constructor.
func (e *Log) Validate() error {
	if e == nil {
		return ErrLogIsNotConstructed
	}
	return e.guard.Validate(ErrLogIsNotConstructed)
}

// ID returns the log row's unique identifier.
func (e *Log) ID() kernel.UUID {
	return e.id
}

// LockerID returns the logged locker's identifier.
func (e *Log) LockerID() kernel.UUID {
	return e.lockerID
}

// CabinetID returns the owning cabinet's identifier at write time.
func (e *Log) CabinetID() kernel.UUID {
	return e.cabinetID
}

// Status returns the operational-axis value, or nil when the row did not
// touch that axis.
func (e *Log) Status() *Status {
	return e.status
}

// Maintenance returns the maintenance-axis value, or nil when the row did
// not touch that axis.
func (e *Log) Maintenance() *Maintenance {
	return e.maintenance
}

// TempMode returns the temp-mode-axis value, or nil when the row did not
// touch that axis.
func (e *Log) TempMode() *TempMode {
	return e.tempMode
}

// Comment returns the operator comment recorded with the row.
func (e *Log) Comment() string {
	return e.comment
}

// CreatedAt returns the local receipt time of the change.
func (e *Log) CreatedAt() time.Time {
	return e.createdAt
}

// ExtCreatedAt returns the externally supplied event time, already
// defaulted to the receipt time when the source provided none.
func (e *Log) ExtCreatedAt() time.Time {
	return e.extCreatedAt
}

// ChangedValue returns the display value of the most specific axis the row
// touched: temp-mode wins over maintenance, maintenance over operational.
// Used by the log-row projection feeding the dashboard.
func (e *Log) ChangedValue() string {
	changed := ""
	if e.status != nil {
		changed = e.status.Key()
	}
	if e.maintenance != nil {
		changed = e.maintenance.Key()
	}
	if e.tempMode != nil {
		changed = string(*e.tempMode)
	}
	return changed
}
