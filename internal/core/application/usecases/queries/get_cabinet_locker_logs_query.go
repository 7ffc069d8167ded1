package queries

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/guard"
)

var (
	ErrGetCabinetLockerLogsQueryIsNotConstructed = errors.New(
		"GetCabinetLockerLogsQuery must be created via NewGetCabinetLockerLogsQuery constructor",
	)
	ErrDayRangeIsInvalid = errors.New("day range end must not precede its start")
)

// GetCabinetLockerLogsQuery retrieves the audit rows of a cabinet's
// lockers over an inclusive day range, optionally narrowed to one temp
// mode. Rows are bucketed by their external timestamp.
type GetCabinetLockerLogsQuery struct {
	cabinetID kernel.UUID
	from      kernel.Day
	to        kernel.Day
	tempMode  string

	guard guard.ConstructorGuard
}

// NewGetCabinetLockerLogsQuery creates a day-ranged audit query. tempMode
// is an optional filter; the empty string means no filtering.
func NewGetCabinetLockerLogsQuery(
	cabinetID kernel.UUID,
	from, to kernel.Day,
	tempMode string,
) (GetCabinetLockerLogsQuery, error) {
	if err := cabinetID.Validate(); err != nil {
		return GetCabinetLockerLogsQuery{}, err
	}
	if from.IsZero() || to.IsZero() {
		return GetCabinetLockerLogsQuery{}, errs.NewValueIsRequiredError("dayRange")
	}
	if to.Before(from) {
		return GetCabinetLockerLogsQuery{}, ErrDayRangeIsInvalid
	}

	return GetCabinetLockerLogsQuery{
		cabinetID: cabinetID,
		from:      from,
		to:        to,
		tempMode:  tempMode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCabinetLockerLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetCabinetLockerLogsQueryIsNotConstructed)
}

// CabinetID returns the queried cabinet's identifier.
func (q GetCabinetLockerLogsQuery) CabinetID() kernel.UUID {
	return q.cabinetID
}

// From returns the first day of the range.
func (q GetCabinetLockerLogsQuery) From() kernel.Day {
	return q.from
}

// To returns the last day of the range, inclusive.
func (q GetCabinetLockerLogsQuery) To() kernel.Day {
	return q.to
}

// TempMode returns the optional temp-mode filter, empty when unset.
func (q GetCabinetLockerLogsQuery) TempMode() string {
	return q.tempMode
}
