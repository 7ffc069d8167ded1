package commands

import (
	"context"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"
)

// UpdateLockerStatusCommandHandler applies a manual operator update to one
// locker: it builds the audit row from the raw key, appends it, and
// mutates the locker from the row. The created row is returned so callers
// can present the recorded change.
//
// Unlike terminal event ingestion this is a single-aggregate operation
// invoked interactively, so an unknown locker is a hard error for the
// caller, not a logged skip.
type UpdateLockerStatusCommandHandler struct {
	uowFactory LockerUoWFactory
	clock      kernel.Clock
}

// NewUpdateLockerStatusCommandHandler creates a handler for manual locker
// status updates.
func NewUpdateLockerStatusCommandHandler(uowFactory LockerUoWFactory, clock kernel.Clock) UpdateLockerStatusCommandHandler {
	return UpdateLockerStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle performs the manual update and returns the appended audit row.
func (h *UpdateLockerStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateLockerStatusCommand,
) (*locker.Log, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lockerRepo := uow.LockerRepository()
	lockerLogRepo := uow.LockerLogRepository()

	lk, err := lockerRepo.Get(ctx, cmd.LockerID())
	if err != nil {
		return nil, err
	}

	entry, err := locker.NewLogFromManualUpdate(kernel.NewUUID(), lk, locker.ManualUpdate{
		StatusKey: cmd.StatusKey(),
		Comment:   cmd.Comment(),
	}, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = lockerLogRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = lk.ApplyLog(entry); err != nil {
		return nil, err
	}

	if err = lockerRepo.Update(ctx, lk); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
