package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

var (
	ErrUpdateCabinetCommandIsNotConstructed = errors.New(
		"UpdateCabinetCommand must be created via NewUpdateCabinetCommand constructor",
	)
	ErrCabinetNameIsRequired = errors.New("cabinet name is required")
	ErrMaxOrdersIsInvalid    = errors.New("max orders must not be negative")
	ErrFeeIsInvalid          = errors.New("fee must not be negative")
)

// UpdateCabinetCommand represents an administrative edit of a cabinet's
// editable fields. The address and external identifier are owned by the
// terminal platform and cannot be edited here.
type UpdateCabinetCommand struct { //nolint:recvcheck //using for validation
	cabinetID   kernel.UUID
	name        string
	maxOrders   int
	fee         decimal.Decimal
	description string

	guard guard.ConstructorGuard
}

// NewUpdateCabinetCommand creates a cabinet edit command.
func NewUpdateCabinetCommand(
	cabinetID kernel.UUID,
	name string,
	maxOrders int,
	fee decimal.Decimal,
	description string,
) (UpdateCabinetCommand, error) {
	if err := cabinetID.Validate(); err != nil {
		return UpdateCabinetCommand{}, err
	}
	if name == "" {
		return UpdateCabinetCommand{}, ErrCabinetNameIsRequired
	}
	if maxOrders < 0 {
		return UpdateCabinetCommand{}, ErrMaxOrdersIsInvalid
	}
	if fee.IsNegative() {
		return UpdateCabinetCommand{}, ErrFeeIsInvalid
	}

	return UpdateCabinetCommand{
		cabinetID:   cabinetID,
		name:        name,
		maxOrders:   maxOrders,
		fee:         fee,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCabinetCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCabinetCommandIsNotConstructed)
}

// CabinetID returns the target cabinet's identifier.
func (c UpdateCabinetCommand) CabinetID() kernel.UUID {
	return c.cabinetID
}

// Name returns the new display name.
func (c UpdateCabinetCommand) Name() string {
	return c.name
}

// MaxOrders returns the new capacity limit.
func (c UpdateCabinetCommand) MaxOrders() int {
	return c.maxOrders
}

// Fee returns the new default delivery fee.
func (c UpdateCabinetCommand) Fee() decimal.Decimal {
	return c.fee
}

// Description returns the new free-text description.
func (c UpdateCabinetCommand) Description() string {
	return c.description
}
