package queries

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

var ErrGetAllCabinetsQueryIsNotConstructed = errors.New(
	"GetAllCabinetsQuery must be created via NewGetAllCabinetsQuery constructor",
)

// GetAllCabinetsQuery retrieves the cabinet overview listing: identity,
// status, locker error counts and the currently routed route/store names.
//
// Example:
//
//	query := NewGetAllCabinetsQuery()
//	handler := NewGetAllCabinetsQueryHandler(db)
//
//	cabinets, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve cabinets: %w", err)
//	}
type GetAllCabinetsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCabinetsQuery creates a query to retrieve the cabinet listing.
// This is a parameterless query that fetches all non-deleted cabinets.
func NewGetAllCabinetsQuery() GetAllCabinetsQuery {
	return GetAllCabinetsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCabinetsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCabinetsQueryIsNotConstructed)
}

// GetAllCabinetsQueryResponse represents one cabinet row in the overview
// listing. RouteName and StoreName are empty for cabinets no route
// version currently serves.
type GetAllCabinetsQueryResponse struct {
	ID              kernel.UUID
	ExternalID      string
	Name            string
	Address         string
	Description     string
	StatusKey       string
	StatusValue     string
	LockerCount     int
	ErrorCount      int
	RouteName       string
	StoreName       string
}
