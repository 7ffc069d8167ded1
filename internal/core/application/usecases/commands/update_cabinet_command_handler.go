package commands

import (
	"context"
)

// UpdateCabinetCommandHandler applies administrative edits to a cabinet.
type UpdateCabinetCommandHandler struct {
	uowFactory CabinetUoWFactory
}

// NewUpdateCabinetCommandHandler creates a handler for cabinet edits.
func NewUpdateCabinetCommandHandler(uowFactory CabinetUoWFactory) UpdateCabinetCommandHandler {
	return UpdateCabinetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the cabinet, applies the edit, and persists it atomically.
func (h *UpdateCabinetCommandHandler) Handle(ctx context.Context, cmd UpdateCabinetCommand) error {
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

	cab, err := cabinetRepo.Get(ctx, cmd.CabinetID())
	if err != nil {
		return err
	}

	if err = cab.UpdateDetails(cmd.Name(), cmd.MaxOrders(), cmd.Fee(), cmd.Description()); err != nil {
		return err
	}

	if err = cabinetRepo.Update(ctx, cab); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
