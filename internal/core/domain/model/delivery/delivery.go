// Package delivery models a booked order handover at a cabinet.
package delivery

import (
	"errors"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is one order bound to a handover window at a cabinet.
type Delivery struct {
	id        kernel.UUID
	orderID   kernel.UUID
	cabinetID kernel.UUID
	configID  kernel.UUID

	handoverFrom time.Time
	handoverTo   time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery bound to a concrete handover window.
func NewDelivery(
	id, orderID, cabinetID, configID kernel.UUID,
	handoverFrom, handoverTo time.Time,
) (*Delivery, error) {
	d := &Delivery{
		id:        id,
		orderID:   orderID,
		cabinetID: cabinetID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		cabinetID.Validate(),
		configID.Validate(),
		d.setWindow(configID, handoverFrom, handoverTo),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistent storage.
func RestoreDelivery(
	id, orderID, cabinetID, configID kernel.UUID,
	handoverFrom, handoverTo time.Time,
) *Delivery {
	return &Delivery{
		id:           id,
		orderID:      orderID,
		cabinetID:    cabinetID,
		configID:     configID,
		handoverFrom: handoverFrom,
		handoverTo:   handoverTo,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }

// CabinetID returns the target cabinet.
func (d *Delivery) CabinetID() kernel.UUID { return d.cabinetID }

// ConfigID returns the slot configuration the delivery is bound to.
func (d *Delivery) ConfigID() kernel.UUID { return d.configID }

// HandoverFrom returns the start of the promised handover window.
func (d *Delivery) HandoverFrom() time.Time { return d.handoverFrom }

// HandoverTo returns the end of the promised handover window.
func (d *Delivery) HandoverTo() time.Time { return d.handoverTo }

// IsOvertime reports whether the promised window has fully elapsed. A
// delivery inside its window is not overtime and must be left alone.
func (d *Delivery) IsOvertime(now time.Time) bool {
	return d.handoverTo.Before(now)
}

// Rebind moves the delivery to a new handover window. The new window
// must start strictly after the current one.
func (d *Delivery) Rebind(configID kernel.UUID, handoverFrom, handoverTo time.Time) error {
	if err := configID.Validate(); err != nil {
		return err
	}
	if !handoverFrom.After(d.handoverFrom) {
		return errs.NewValueIsInvalidError("handoverFrom")
	}
	return d.setWindow(configID, handoverFrom, handoverTo)
}

func (d *Delivery) setWindow(configID kernel.UUID, from, to time.Time) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("handoverFrom")
	}
	if to.IsZero() {
		return errs.NewValueIsRequiredError("handoverTo")
	}
	if !to.After(from) {
		return errs.NewValueIsInvalidError("handoverTo")
	}
	d.configID = configID
	d.handoverFrom = from
	d.handoverTo = to
	return nil
}
