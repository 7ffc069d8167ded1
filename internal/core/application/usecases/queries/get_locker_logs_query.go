package queries

import (
	"errors"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"
	"lockerfleet/internal/pkg/guard"
)

var ErrGetLockerLogsQueryIsNotConstructed = errors.New(
	"GetLockerLogsQuery must be created via NewGetLockerLogsQuery constructor",
)

// GetLockerLogsQuery retrieves the audit trail of one locker, newest
// first.
type GetLockerLogsQuery struct {
	lockerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLockerLogsQuery creates a query for one locker's audit trail.
func NewGetLockerLogsQuery(lockerID kernel.UUID) (GetLockerLogsQuery, error) {
	if err := lockerID.Validate(); err != nil {
		return GetLockerLogsQuery{}, err
	}

	return GetLockerLogsQuery{
		lockerID: lockerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLockerLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetLockerLogsQueryIsNotConstructed)
}

// LockerID returns the queried locker's identifier.
func (q GetLockerLogsQuery) LockerID() kernel.UUID {
	return q.lockerID
}

// LockerLogResponse represents one audit row in the read model.
// ChangedValue carries the key of the most specific axis the row touched.
type LockerLogResponse struct {
	ID           kernel.UUID
	LockerID     kernel.UUID
	CabinetID    kernel.UUID
	ChangedValue string
	Comment      string
	CreatedAt    time.Time
	ExtCreatedAt time.Time
}

func logToResponse(entry *locker.Log) LockerLogResponse {
	return LockerLogResponse{
		ID:           entry.ID(),
		LockerID:     entry.LockerID(),
		CabinetID:    entry.CabinetID(),
		ChangedValue: entry.ChangedValue(),
		Comment:      entry.Comment(),
		CreatedAt:    entry.CreatedAt(),
		ExtCreatedAt: entry.ExtCreatedAt(),
	}
}
