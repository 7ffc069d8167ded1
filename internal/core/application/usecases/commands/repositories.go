// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"lockerfleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CabinetRepoFactory provides access to the cabinet repository within a transaction.
	CabinetRepoFactory interface {
		CabinetRepository() ports.CabinetRepository
	}

	// CabinetLogRepoFactory provides access to the cabinet log repository within a transaction.
	CabinetLogRepoFactory interface {
		CabinetLogRepository() ports.CabinetLogRepository
	}

	// LockerRepoFactory provides access to the locker repository within a transaction.
	LockerRepoFactory interface {
		LockerRepository() ports.LockerRepository
	}

	// LockerLogRepoFactory provides access to the locker log repository within a transaction.
	LockerLogRepoFactory interface {
		LockerLogRepository() ports.LockerLogRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CabinetUoW manages transactions for cabinet-only operations.
	CabinetUoW interface {
		TxManager
		CabinetRepoFactory
	}

	// CabinetUoWFactory creates new cabinet unit of work instances.
	CabinetUoWFactory interface {
		Create() CabinetUoW
	}

	// FleetUoW manages transactions across cabinets, lockers, and their
	// audit logs. Used by the reconciliation commands, which touch both
	// aggregate types and append to both log stores.
	FleetUoW interface {
		TxManager
		CabinetRepoFactory
		CabinetLogRepoFactory
		LockerRepoFactory
		LockerLogRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// LockerUoW manages transactions for locker status updates, which
	// mutate one locker and append one audit row.
	LockerUoW interface {
		TxManager
		LockerRepoFactory
		LockerLogRepoFactory
	}

	// LockerUoWFactory creates new locker unit of work instances.
	LockerUoWFactory interface {
		Create() LockerUoW
	}

	// DeliveryUoW manages transactions for delivery rebinding.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
