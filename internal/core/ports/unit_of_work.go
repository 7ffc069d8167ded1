package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CabinetRepository returns a CabinetRepository bound to the current
	// transaction.
	CabinetRepository() CabinetRepository

	// CabinetLogRepository returns a CabinetLogRepository bound to the
	// current transaction.
	CabinetLogRepository() CabinetLogRepository

	// LockerRepository returns a LockerRepository bound to the current
	// transaction.
	LockerRepository() LockerRepository

	// LockerLogRepository returns a LockerLogRepository bound to the
	// current transaction.
	LockerLogRepository() LockerLogRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current
	// transaction.
	DeliveryRepository() DeliveryRepository
}
