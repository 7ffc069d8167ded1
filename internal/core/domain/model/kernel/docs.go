// Package kernel provides core domain primitives for the locker fleet system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Day: a calendar-day bucket in the fleet's fixed time zone
//   - ClockOffset: a wall-clock offset within a day, used by time slots
//   - Clock: the time source abstraction that keeps temporal logic testable
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
