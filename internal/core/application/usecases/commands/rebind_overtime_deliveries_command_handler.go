package commands

import (
	"context"
	"log/slog"
	"time"

	"lockerfleet/internal/core/domain/model/delivery"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/services"
	"lockerfleet/internal/core/ports"
	"lockerfleet/internal/pkg/keymutex"
)

// RebindOvertimeDeliveriesCommandHandler moves overtime deliveries to the
// next bookable slot of their cabinet's current day.
//
// For each overtime delivery, today's slot instances are scanned in start
// order; instances whose start has already passed are skipped and the
// first available one is bound. The handover window is overwritten and
// persisted, then the commerce platform is notified best-effort: a failed
// notification is logged and swallowed because the locally committed
// rebinding is authoritative.
//
// A delivery with no remaining slot today stays overtime until the next
// run; the workflow does not search future days.
//
// Binding for the same cabinet and day is serialized so two competing
// deliveries cannot both take the last opening of a slot.
type RebindOvertimeDeliveriesCommandHandler struct {
	uowFactory   DeliveryUoWFactory
	availability *services.SlotAvailability
	orders       ports.OrderRepository
	orderSync    ports.OrderSyncPort
	clock        kernel.Clock
	location     *time.Location
	logger       *slog.Logger
	slots        *keymutex.KeyMutex
}

// NewRebindOvertimeDeliveriesCommandHandler creates a handler for the
// overtime rebinding workflow.
func NewRebindOvertimeDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	availability *services.SlotAvailability,
	orders ports.OrderRepository,
	orderSync ports.OrderSyncPort,
	clock kernel.Clock,
	location *time.Location,
	logger *slog.Logger,
) RebindOvertimeDeliveriesCommandHandler {
	return RebindOvertimeDeliveriesCommandHandler{
		uowFactory:   uowFactory,
		availability: availability,
		orders:       orders,
		orderSync:    orderSync,
		clock:        clock,
		location:     location,
		logger:       logger.With("component", "rebind_overtime_deliveries"),
		slots:        keymutex.New(),
	}
}

// Handle performs one rebinding pass. Failures on individual deliveries
// are logged and skipped; each rebinding commits atomically on its own.
func (h *RebindOvertimeDeliveriesCommandHandler) Handle(ctx context.Context, cmd RebindOvertimeDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now().In(h.location)

	overtime, err := h.fetchOvertime(ctx, now)
	if err != nil {
		return err
	}

	today := kernel.DayOf(now, h.location)
	for _, d := range overtime {
		if !d.IsOvertime(now) {
			// The window is still open; the handover can happen as promised.
			continue
		}
		if rebindErr := h.rebindOne(ctx, d, today); rebindErr != nil {
			h.logger.ErrorContext(ctx, "failed to rebind overtime delivery",
				"deliveryId", d.ID().String(), "error", rebindErr)
		}
	}

	return nil
}

func (h *RebindOvertimeDeliveriesCommandHandler) fetchOvertime(
	ctx context.Context,
	now time.Time,
) ([]*delivery.Delivery, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	overtime, err := uow.DeliveryRepository().GetOvertime(ctx, now)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return overtime, nil
}

func (h *RebindOvertimeDeliveriesCommandHandler) rebindOne(
	ctx context.Context,
	d *delivery.Delivery,
	today kernel.Day,
) error {
	slotKey := d.CabinetID().String() + "/" + today.String()
	h.slots.Lock(slotKey)
	defer h.slots.Unlock(slotKey)

	slot, found, err := h.availability.NextBookable(ctx, d.CabinetID())
	if err != nil {
		return err
	}
	if !found {
		// Nothing bookable today; the next scheduler run retries.
		return nil
	}

	if err = d.Rebind(slot.ConfigID, today.At(slot.StartTime), today.At(slot.EndTime)); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, d)
	return nil
}

// notify pushes the new handover window to the commerce platform. The
// rebinding is already committed; any failure here is logged and dropped.
func (h *RebindOvertimeDeliveriesCommandHandler) notify(ctx context.Context, d *delivery.Delivery) {
	order, err := h.orders.Get(ctx, d.OrderID())
	if err != nil {
		h.logger.ErrorContext(ctx, "rebinding committed but order lookup for notification failed",
			"deliveryId", d.ID().String(), "orderId", d.OrderID().String(), "error", err)
		return
	}

	if err = h.orderSync.NotifyHandoverChanged(ctx, order, d); err != nil {
		h.logger.ErrorContext(ctx, "rebinding committed but order sync notification failed",
			"deliveryId", d.ID().String(), "orderId", d.OrderID().String(), "error", err)
	}
}
