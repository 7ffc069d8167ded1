package cabinet

import (
	"errors"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

// ErrLogIsNotConstructed is returned when a Log instance was not created
// through NewStatusChangeLog or RestoreLog.
var ErrLogIsNotConstructed = errors.New("Log must be created via NewStatusChangeLog or RestoreLog")

// Log is one immutable audit row for a cabinet-level operational status
// transition. Rows are write-once; no update or delete path exists.
type Log struct {
	id        kernel.UUID
	cabinetID kernel.UUID

	// userID identifies the operator behind a manual transition; hardware
	// driven transitions carry none.
	userID *kernel.UUID

	status       Status
	createdAt    time.Time
	extCreatedAt time.Time

	guard guard.ConstructorGuard
}

// NewStatusChangeLog creates the audit row for a cabinet status
// transition. extCreatedAt is the event's own timestamp; pass the receipt
// time when the event carried none.
func NewStatusChangeLog(
	id kernel.UUID,
	c *Cabinet,
	newStatus Status,
	receivedAt time.Time,
	extCreatedAt time.Time,
) (*Log, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if extCreatedAt.IsZero() {
		extCreatedAt = receivedAt
	}

	return &Log{
		id:           id,
		cabinetID:    c.ID(),
		status:       newStatus,
		createdAt:    receivedAt,
		extCreatedAt: extCreatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreLog reconstructs a log row from its persisted state.
func RestoreLog(
	id, cabinetID kernel.UUID,
	userID *kernel.UUID,
	status Status,
	createdAt, extCreatedAt time.Time,
) (*Log, error) {
	if err := errors.Join(id.Validate(), cabinetID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	if extCreatedAt.IsZero() {
		extCreatedAt = createdAt
	}

	return &Log{
		id:           id,
		cabinetID:    cabinetID,
		userID:       userID,
		status:       status,
		createdAt:    createdAt,
		extCreatedAt: extCreatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
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

// CabinetID returns the logged cabinet's identifier.
func (e *Log) CabinetID() kernel.UUID {
	return e.cabinetID
}

// UserID returns the acting operator's identifier, or nil for hardware
// driven transitions.
func (e *Log) UserID() *kernel.UUID {
	return e.userID
}

// Status returns the new cabinet status recorded by the row.
func (e *Log) Status() Status {
	return e.status
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
