package commands

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/guard"
)

var ErrUpdateLockerStatusCommandIsNotConstructed = errors.New(
	"UpdateLockerStatusCommand must be created via NewUpdateLockerStatusCommand constructor",
)

// UpdateLockerStatusCommand represents a manual operator status update for
// one locker: a free-text classifier key plus an optional comment.
//
// The key is deliberately not validated against a closed set here: the
// temp-mode axis is an open set, so any string the operator's tooling
// sends is routed to an axis by the domain rules.
type UpdateLockerStatusCommand struct { //nolint:recvcheck //using for validation
	lockerID  kernel.UUID
	statusKey string
	comment   string

	guard guard.ConstructorGuard
}

// NewUpdateLockerStatusCommand creates a manual status update command.
func NewUpdateLockerStatusCommand(lockerID kernel.UUID, statusKey, comment string) (UpdateLockerStatusCommand, error) {
	if err := lockerID.Validate(); err != nil {
		return UpdateLockerStatusCommand{}, err
	}

	return UpdateLockerStatusCommand{
		lockerID:  lockerID,
		statusKey: statusKey,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLockerStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLockerStatusCommandIsNotConstructed)
}

// LockerID returns the target locker's identifier.
func (c UpdateLockerStatusCommand) LockerID() kernel.UUID {
	return c.lockerID
}

// StatusKey returns the free-text classifier key of the update.
func (c UpdateLockerStatusCommand) StatusKey() string {
	return c.statusKey
}

// Comment returns the operator comment, possibly empty.
func (c UpdateLockerStatusCommand) Comment() string {
	return c.comment
}
