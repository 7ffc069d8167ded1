package ports

import (
	"context"

	"lockerfleet/internal/core/domain/model/delivery"
)

// OrderSyncPort pushes handover window changes to the commerce platform.
//
// Calls are best-effort from the caller's perspective: the rebinding
// workflow commits its local change regardless of notification outcome and
// only logs a failure. Implementations should still return errors so that
// callers can log them.
type OrderSyncPort interface {
	// NotifyHandoverChanged reports the delivery's new handover window for
	// the given order.
	NotifyHandoverChanged(ctx context.Context, order *delivery.Order, d *delivery.Delivery) error
}
