package commands

import (
	"errors"
	"time"

	"lockerfleet/internal/pkg/guard"
)

var (
	ErrApplyTerminalEventCommandIsNotConstructed = errors.New(
		"ApplyTerminalEventCommand must be created via NewApplyTerminalEventCommand constructor",
	)
	ErrTerminalIDIsRequired = errors.New("terminal id is required")
	ErrBoxIndexIsInvalid    = errors.New("box index must be greater than 0")
)

// BoxState is one per-box reading within a terminal event: the 1-based box
// index, whether the hardware reports the box as disabled, and the raw
// thermal mode code.
type BoxState struct {
	Index       int
	IsDisabled  bool
	ThermalMode int
}

// ApplyTerminalEventCommand represents one hardware state event from the
// terminal platform: cabinet-level deletion flag plus per-box states.
//
// Example:
//
//	cmd, err := NewApplyTerminalEventCommand("TERM-001", eventTime, false, boxes)
//	if err != nil {
//	    return fmt.Errorf("invalid terminal event: %w", err)
//	}
//
//	handler := NewApplyTerminalEventCommandHandler(uowFactory, clock, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to apply terminal event: %w", err)
//	}
type ApplyTerminalEventCommand struct { //nolint:recvcheck //using for validation
	terminalID string
	occurredAt time.Time
	isDeleted  bool
	boxes      []BoxState

	guard guard.ConstructorGuard
}

// NewApplyTerminalEventCommand creates a command from a raw terminal event.
// occurredAt may be zero when the event carried no timestamp; the handler
// falls back to the receipt time. Box indexes must be 1-based.
func NewApplyTerminalEventCommand(
	terminalID string,
	occurredAt time.Time,
	isDeleted bool,
	boxes []BoxState,
) (ApplyTerminalEventCommand, error) {
	if terminalID == "" {
		return ApplyTerminalEventCommand{}, ErrTerminalIDIsRequired
	}
	for _, box := range boxes {
		if box.Index < 1 {
			return ApplyTerminalEventCommand{}, ErrBoxIndexIsInvalid
		}
	}

	return ApplyTerminalEventCommand{
		terminalID: terminalID,
		occurredAt: occurredAt,
		isDeleted:  isDeleted,
		boxes:      boxes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyTerminalEventCommand) Validate() error {
	return c.guard.Validate(ErrApplyTerminalEventCommandIsNotConstructed)
}

// TerminalID returns the terminal platform identifier of the cabinet.
func (c ApplyTerminalEventCommand) TerminalID() string {
	return c.terminalID
}

// OccurredAt returns the event's own timestamp, zero when absent.
func (c ApplyTerminalEventCommand) OccurredAt() time.Time {
	return c.occurredAt
}

// IsDeleted returns the cabinet-level deletion flag.
func (c ApplyTerminalEventCommand) IsDeleted() bool {
	return c.isDeleted
}

// Boxes returns the per-box states carried by the event.
func (c ApplyTerminalEventCommand) Boxes() []BoxState {
	return c.boxes
}
