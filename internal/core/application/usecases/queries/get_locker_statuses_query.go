package queries

import (
	"errors"

	"lockerfleet/internal/pkg/guard"
)

var ErrGetLockerStatusesQueryIsNotConstructed = errors.New(
	"GetLockerStatusesQuery must be created via NewGetLockerStatusesQuery constructor",
)

// GetLockerStatusesQuery retrieves the locker states an operator can set
// manually. Package-flow states are machine-driven and excluded from the
// listing.
type GetLockerStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLockerStatusesQuery creates a query for the settable locker state
// listing.
func NewGetLockerStatusesQuery() GetLockerStatusesQuery {
	return GetLockerStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLockerStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetLockerStatusesQueryIsNotConstructed)
}

// LockerStatusResponse represents one settable locker state: the machine
// key and its display text.
type LockerStatusResponse struct {
	Key   string
	Value string
}
