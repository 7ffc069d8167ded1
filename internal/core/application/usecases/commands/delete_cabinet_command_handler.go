package commands

import (
	"context"
)

// DeleteCabinetCommandHandler soft-deletes cabinets.
type DeleteCabinetCommandHandler struct {
	uowFactory CabinetUoWFactory
}

// NewDeleteCabinetCommandHandler creates a handler for cabinet deletion.
func NewDeleteCabinetCommandHandler(uowFactory CabinetUoWFactory) DeleteCabinetCommandHandler {
	return DeleteCabinetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft-deletes the cabinet. The lookup precedes the delete so an
// unknown identifier surfaces as a not-found error rather than a silent
// no-op.
func (h *DeleteCabinetCommandHandler) Handle(ctx context.Context, cmd DeleteCabinetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cabinetRepo := uow.CabinetRepository()

	if _, err := cabinetRepo.Get(ctx, cmd.CabinetID()); err != nil {
		return err
	}

	if err := cabinetRepo.Delete(ctx, cmd.CabinetID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
