package commands

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

var ErrDeleteCabinetCommandIsNotConstructed = errors.New(
	"DeleteCabinetCommand must be created via NewDeleteCabinetCommand constructor",
)

// DeleteCabinetCommand soft-deletes a cabinet. Deleted cabinets stay in
// storage but disappear from every listing.
type DeleteCabinetCommand struct { //nolint:recvcheck //using for validation
	cabinetID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCabinetCommand creates a cabinet deletion command.
func NewDeleteCabinetCommand(cabinetID kernel.UUID) (DeleteCabinetCommand, error) {
	if err := cabinetID.Validate(); err != nil {
		return DeleteCabinetCommand{}, err
	}

	return DeleteCabinetCommand{
		cabinetID: cabinetID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCabinetCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCabinetCommandIsNotConstructed)
}

// CabinetID returns the target cabinet's identifier.
func (c DeleteCabinetCommand) CabinetID() kernel.UUID {
	return c.cabinetID
}
