package queries

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

var ErrGetAvailableCabinetsQueryIsNotConstructed = errors.New(
	"GetAvailableCabinetsQuery must be created via NewGetAvailableCabinetsQuery constructor",
)

// GetAvailableCabinetsQuery retrieves the active cabinets a route version
// currently serves, i.e. the cabinets a customer can pick for delivery
// today.
type GetAvailableCabinetsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableCabinetsQuery creates a query for the deliverable
// cabinet listing.
func NewGetAvailableCabinetsQuery() GetAvailableCabinetsQuery {
	return GetAvailableCabinetsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableCabinetsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCabinetsQueryIsNotConstructed)
}

// GetAvailableCabinetsQueryResponse represents one deliverable cabinet.
type GetAvailableCabinetsQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Address string
}
