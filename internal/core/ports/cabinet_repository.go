// Package ports defines repository interfaces for the locker fleet domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/kernel"
)

// CabinetRepository defines the persistence contract for cabinet aggregates.
type CabinetRepository interface {
	// Add persists a new cabinet aggregate to storage.
	Add(ctx context.Context, aggregate *cabinet.Cabinet) error

	// Update persists changes to an existing cabinet aggregate.
	Update(ctx context.Context, aggregate *cabinet.Cabinet) error

	// Get retrieves a cabinet by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cabinet.Cabinet, error)

	// GetByExternalID retrieves a cabinet by the terminal platform
	// identifier carried in hardware events.
	GetByExternalID(ctx context.Context, externalID string) (*cabinet.Cabinet, error)

	// GetAllActive retrieves all non-deleted cabinets in active status.
	GetAllActive(ctx context.Context) ([]*cabinet.Cabinet, error)

	// Delete soft-deletes a cabinet. Deleted cabinets are excluded from
	// every listing operation.
	Delete(ctx context.Context, id kernel.UUID) error
}

// CabinetLogRepository is the append-only store for cabinet status
// transitions. Rows are write-once; there is no update or delete.
type CabinetLogRepository interface {
	// Add appends an audit row.
	Add(ctx context.Context, entry *cabinet.Log) error

	// GetByCabinet retrieves all audit rows of a cabinet, newest first.
	GetByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*cabinet.Log, error)
}
