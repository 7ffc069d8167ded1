package delivery

import (
	"errors"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/pkg/errs"
	"lockerfleet/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created via
// NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder")

// Order is the sales order behind a delivery. Only the identity and the
// human-facing number are kept here; the order itself is owned by the
// commerce platform.
type Order struct {
	id     kernel.UUID
	number string

	guard guard.ConstructorGuard
}

// NewOrder creates an order reference.
func NewOrder(id kernel.UUID, number string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	return &Order{id: id, number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Order was created through its constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-facing order number.
func (o *Order) Number() string { return o.number }
