package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"
	"lockerfleet/internal/core/ports"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/keymutex"
)

// ApplyTerminalEventCommandHandler reconciles cabinet and locker state
// against one hardware event.
//
// Resolution rules:
//   - An event whose terminal identifier matches no cabinet is logged and
//     dropped whole; no locker or log row is touched.
//   - A box whose index matches no locker is logged and skipped; the rest
//     of the event still applies.
//   - Audit rows are appended only on observed status transitions; the
//     thermal reading and the aggregates themselves are persisted on every
//     event.
//
// Events for the same terminal are serialized, since transition detection
// is defined against current persisted state.
type ApplyTerminalEventCommandHandler struct {
	uowFactory FleetUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
	terminals  *keymutex.KeyMutex
}

// NewApplyTerminalEventCommandHandler creates a handler for terminal
// hardware events.
func NewApplyTerminalEventCommandHandler(
	uowFactory FleetUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) ApplyTerminalEventCommandHandler {
	return ApplyTerminalEventCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "apply_terminal_event"),
		terminals:  keymutex.New(),
	}
}

// Handle applies one terminal event. An unmatched terminal identifier is
// reported through the log, not the error return: batch event ingestion
// must not fail wholesale on one unknown terminal.
func (h *ApplyTerminalEventCommandHandler) Handle(ctx context.Context, cmd ApplyTerminalEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.terminals.Lock(cmd.TerminalID())
	defer h.terminals.Unlock(cmd.TerminalID())

	receivedAt := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cabinetRepo := uow.CabinetRepository()
	cabinetLogRepo := uow.CabinetLogRepository()
	lockerRepo := uow.LockerRepository()
	lockerLogRepo := uow.LockerLogRepository()

	cab, err := cabinetRepo.GetByExternalID(ctx, cmd.TerminalID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.ErrorContext(ctx, "terminal event for unknown cabinet dropped",
				"terminalId", cmd.TerminalID())
			return nil
		}
		return err
	}

	if err = h.reconcileCabinet(ctx, cabinetRepo, cabinetLogRepo, cab, cmd, receivedAt); err != nil {
		return err
	}

	for _, box := range cmd.Boxes() {
		if err = h.reconcileBox(ctx, lockerRepo, lockerLogRepo, cab, box, cmd.OccurredAt(), receivedAt); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// reconcileCabinet applies the deletion flag to the cabinet status,
// appending an audit row only on transition. The cabinet is persisted
// either way.
func (h *ApplyTerminalEventCommandHandler) reconcileCabinet(
	ctx context.Context,
	cabinetRepo ports.CabinetRepository,
	cabinetLogRepo ports.CabinetLogRepository,
	cab *cabinet.Cabinet,
	cmd ApplyTerminalEventCommand,
	receivedAt time.Time,
) error {
	newStatus, changed := cab.ReconcileStatus(cmd.IsDeleted())
	if changed {
		entry, err := cabinet.NewStatusChangeLog(kernel.NewUUID(), cab, newStatus, receivedAt, cmd.OccurredAt())
		if err != nil {
			return err
		}
		if err = cabinetLogRepo.Add(ctx, entry); err != nil {
			return err
		}
	}
	return cabinetRepo.Update(ctx, cab)
}

// reconcileBox resolves one box report against its locker. An unmatched
// index skips that box only; event processing continues.
func (h *ApplyTerminalEventCommandHandler) reconcileBox(
	ctx context.Context,
	lockerRepo ports.LockerRepository,
	lockerLogRepo ports.LockerLogRepository,
	cab *cabinet.Cabinet,
	box BoxState,
	occurredAt, receivedAt time.Time,
) error {
	lk, err := lockerRepo.GetByCabinetAndIndex(ctx, cab.ID(), box.Index)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.ErrorContext(ctx, "box report for unknown locker skipped",
				"cabinetId", cab.ID().String(), "boxIndex", box.Index)
			return nil
		}
		return err
	}

	if changed := lk.ApplyBoxState(box.IsDisabled, box.ThermalMode); changed {
		entry, logErr := locker.NewStatusChangeLog(kernel.NewUUID(), lk, lk.Status(), receivedAt, occurredAt)
		if logErr != nil {
			return logErr
		}
		if logErr = lockerLogRepo.Add(ctx, entry); logErr != nil {
			return logErr
		}
	}

	return lockerRepo.Update(ctx, lk)
}
