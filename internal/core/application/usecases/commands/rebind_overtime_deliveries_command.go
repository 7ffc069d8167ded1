package commands

import (
	"errors"

	"lockerfleet/internal/pkg/guard"
)

var ErrRebindOvertimeDeliveriesCommandIsNotConstructed = errors.New(
	"RebindOvertimeDeliveriesCommand must be created via NewRebindOvertimeDeliveriesCommand constructor",
)

// RebindOvertimeDeliveriesCommand triggers one pass of the overtime
// rebinding workflow. It carries no parameters; the scheduler issues it on
// a fixed cadence.
type RebindOvertimeDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewRebindOvertimeDeliveriesCommand creates the rebinding trigger command.
func NewRebindOvertimeDeliveriesCommand() RebindOvertimeDeliveriesCommand {
	return RebindOvertimeDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RebindOvertimeDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrRebindOvertimeDeliveriesCommandIsNotConstructed)
}
