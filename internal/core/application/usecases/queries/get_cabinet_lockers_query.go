package queries

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

var ErrGetCabinetLockersQueryIsNotConstructed = errors.New(
	"GetCabinetLockersQuery must be created via NewGetCabinetLockersQuery constructor",
)

// GetCabinetLockersQuery retrieves all lockers of one cabinet in box
// order.
type GetCabinetLockersQuery struct {
	cabinetID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCabinetLockersQuery creates a per-cabinet locker listing query.
func NewGetCabinetLockersQuery(cabinetID kernel.UUID) (GetCabinetLockersQuery, error) {
	if err := cabinetID.Validate(); err != nil {
		return GetCabinetLockersQuery{}, err
	}

	return GetCabinetLockersQuery{
		cabinetID: cabinetID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCabinetLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetCabinetLockersQueryIsNotConstructed)
}

// CabinetID returns the queried cabinet's identifier.
func (q GetCabinetLockersQuery) CabinetID() kernel.UUID {
	return q.cabinetID
}

// GetCabinetLockersQueryResponse is one locker row of the per-cabinet
// listing. StateValue is the display value of the locker's temp mode when
// the dictionary knows it, the raw key otherwise.
type GetCabinetLockersQueryResponse struct {
	ID          kernel.UUID
	BoxIndex    int
	StatusKey   string
	Maintenance int
	TempMode    string
	StateValue  string
	Comment     string
	ThermoMode  int
}
