package queries

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

var ErrGetCabinetDetailsQueryIsNotConstructed = errors.New(
	"GetCabinetDetailsQuery must be created via NewGetCabinetDetailsQuery constructor",
)

// GetCabinetDetailsQuery retrieves the full read model of one cabinet,
// including the editable fields the listing omits.
type GetCabinetDetailsQuery struct {
	cabinetID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCabinetDetailsQuery creates a single-cabinet detail query.
func NewGetCabinetDetailsQuery(cabinetID kernel.UUID) (GetCabinetDetailsQuery, error) {
	if err := cabinetID.Validate(); err != nil {
		return GetCabinetDetailsQuery{}, err
	}

	return GetCabinetDetailsQuery{
		cabinetID: cabinetID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCabinetDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetCabinetDetailsQueryIsNotConstructed)
}

// CabinetID returns the queried cabinet's identifier.
func (q GetCabinetDetailsQuery) CabinetID() kernel.UUID {
	return q.cabinetID
}

// GetCabinetDetailsQueryResponse is the detail read model of one cabinet.
// Fee is the decimal delivery fee rendered as a string.
type GetCabinetDetailsQueryResponse struct {
	ID          kernel.UUID
	ExternalID  string
	SecondaryID string
	Name        string
	Address     string
	Description string
	StatusKey   string
	StatusValue string
	MaxOrders   int
	Fee         string
	LockerCount int
	ErrorCount  int
	RouteName   string
	StoreName   string
}
