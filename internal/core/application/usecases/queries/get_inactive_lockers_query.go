package queries

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

var ErrGetInactiveLockersQueryIsNotConstructed = errors.New(
	"GetInactiveLockersQuery must be created via NewGetInactiveLockersQuery constructor",
)

// GetInactiveLockersQuery retrieves all lockers currently out of service,
// across cabinets, for the maintenance dashboard.
type GetInactiveLockersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInactiveLockersQuery creates a query for the out-of-service
// locker listing.
func NewGetInactiveLockersQuery() GetInactiveLockersQuery {
	return GetInactiveLockersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInactiveLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetInactiveLockersQueryIsNotConstructed)
}

// GetInactiveLockersQueryResponse represents one out-of-service locker.
// StateValue carries the classifier display text of the locker's current
// temp mode when the dictionary knows it, otherwise the raw key.
type GetInactiveLockersQueryResponse struct {
	ID          kernel.UUID
	CabinetID   kernel.UUID
	CabinetName string
	BoxIndex    int
	Comment     string
	StateValue  string
	RouteName   string
	StoreName   string
	LogCount    int64
}
