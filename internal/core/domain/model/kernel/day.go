package kernel

import (
	"fmt"
	"time"
)

// Day is a value object representing one calendar day in a fixed time zone.
// It is the bucket used for delivery scheduling: route validity windows,
// slot availability, and audit-log range filters all compare whole days,
// never raw instants.
//
// The zero value is invalid; construct instances with DayOf or DayFromDate.
// Day is immutable, comparisons are cheap, and the underlying location is
// carried along so arithmetic stays in the fleet's zone across DST changes.
type Day struct {
	midnight time.Time
}

// DayOf truncates an instant to its calendar-day boundary in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	lt := t.In(loc)
	return Day{midnight: time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)}
}

// DayFromDate builds a Day from calendar components in loc.
func DayFromDate(year int, month time.Month, day int, loc *time.Location) Day {
	return Day{midnight: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// AddDays returns the day n calendar days later (earlier for negative n).
// Arithmetic goes through time.Date so a DST transition cannot shift the
// result off midnight.
func (d Day) AddDays(n int) Day {
	shifted := d.midnight.AddDate(0, 0, n)
	return Day{midnight: time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, d.midnight.Location())}
}

// Start returns the instant of local midnight opening the day.
func (d Day) Start() time.Time {
	return d.midnight
}

// At resolves a wall-clock offset within the day to an absolute instant.
func (d Day) At(offset ClockOffset) time.Time {
	return d.midnight.Add(time.Duration(offset))
}

// Before reports whether d is an earlier calendar day than other.
func (d Day) Before(other Day) bool {
	return d.midnight.Before(other.midnight)
}

// After reports whether d is a later calendar day than other.
func (d Day) After(other Day) bool {
	return d.midnight.After(other.midnight)
}

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool {
	return d.midnight.Equal(other.midnight)
}

// IsZero reports whether d is the invalid zero value.
func (d Day) IsZero() bool {
	return d.midnight.IsZero()
}

// String formats the day as "2006-01-02".
func (d Day) String() string {
	return d.midnight.Format(time.DateOnly)
}

// ClockOffset is a wall-clock offset since local midnight. Time slot
// configurations store their start, end, and picking-start boundaries as
// offsets so one configuration projects onto any calendar day.
type ClockOffset time.Duration

// ClockOffsetOf computes the offset of an instant within its local day.
func ClockOffsetOf(t time.Time, loc *time.Location) ClockOffset {
	lt := t.In(loc)
	return ClockOffset(lt.Sub(DayOf(t, loc).Start()))
}

// ClockOffsetFromMillis converts a milliseconds-since-midnight count, the
// representation used by the terminal platform and the slot configuration
// tables.
func ClockOffsetFromMillis(ms int64) ClockOffset {
	return ClockOffset(time.Duration(ms) * time.Millisecond)
}

// Millis returns the offset as milliseconds since midnight.
func (c ClockOffset) Millis() int64 {
	return time.Duration(c).Milliseconds()
}

// Duration returns the offset as a time.Duration.
func (c ClockOffset) Duration() time.Duration {
	return time.Duration(c)
}

// String formats the offset as "15:04".
func (c ClockOffset) String() string {
	d := time.Duration(c)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
