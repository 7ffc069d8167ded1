// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the locker fleet. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - SlotAvailability: A domain service computing which delivery windows of a
//     cabinet can still be booked on each upcoming day
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
