package ports

import (
	"context"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"
)

// LockerRepository defines the persistence contract for locker aggregates.
type LockerRepository interface {
	// Add persists a new locker aggregate to storage.
	Add(ctx context.Context, aggregate *locker.Locker) error

	// Update persists changes to an existing locker aggregate.
	Update(ctx context.Context, aggregate *locker.Locker) error

	// Get retrieves a locker by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error)

	// GetByExternalID retrieves a locker by its terminal platform
	// identifier.
	GetByExternalID(ctx context.Context, externalID string) (*locker.Locker, error)

	// GetByCabinetAndIndex resolves a locker from a hardware box report,
	// which addresses boxes by cabinet and 1-based index.
	GetByCabinetAndIndex(ctx context.Context, cabinetID kernel.UUID, index int) (*locker.Locker, error)

	// GetAllByCabinet retrieves all lockers of a cabinet ordered by index
	// ascending.
	GetAllByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*locker.Locker, error)

	// GetAllWithStatusNot retrieves all lockers whose operational status
	// differs from the given one, across cabinets. Used for the inactive
	// locker listing.
	GetAllWithStatusNot(ctx context.Context, status locker.Status) ([]*locker.Locker, error)
}

// LockerLogRepository is the append-only store for locker audit rows.
// Rows are write-once; there is no update or delete.
type LockerLogRepository interface {
	// Add appends an audit row.
	Add(ctx context.Context, entry *locker.Log) error

	// GetByLocker retrieves all audit rows of a locker, newest first.
	GetByLocker(ctx context.Context, lockerID kernel.UUID) ([]*locker.Log, error)

	// GetByCabinet retrieves all audit rows of a cabinet's lockers, newest
	// first.
	GetByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*locker.Log, error)

	// CountByLocker reports how many audit rows a locker has accumulated.
	CountByLocker(ctx context.Context, lockerID kernel.UUID) (int64, error)
}
