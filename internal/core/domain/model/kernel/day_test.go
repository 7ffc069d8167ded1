package kernel_test

import (
	"testing"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tallinn(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Tallinn")
	require.NoError(t, err)
	return loc
}

func TestDayOf_TruncatesToLocalMidnight(t *testing.T) {
	loc := tallinn(t)
	instant := time.Date(2024, time.March, 15, 17, 42, 13, 500, loc)

	day := kernel.DayOf(instant, loc)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, loc), day.Start())
	assert.Equal(t, "2024-03-15", day.String())
}

func TestDayOf_ConvertsInstantIntoZone(t *testing.T) {
	loc := tallinn(t)
	// 23:30 UTC is already the next day in Tallinn (UTC+2 in winter).
	instant := time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC)

	day := kernel.DayOf(instant, loc)

	assert.Equal(t, "2024-01-11", day.String())
}

func TestDay_AddDays(t *testing.T) {
	loc := tallinn(t)
	day := kernel.DayFromDate(2024, time.February, 28, loc)

	assert.Equal(t, "2024-02-29", day.AddDays(1).String())
	assert.Equal(t, "2024-03-01", day.AddDays(2).String())
	assert.Equal(t, "2024-02-27", day.AddDays(-1).String())
}

func TestDay_AddDays_AcrossDSTStaysOnMidnight(t *testing.T) {
	loc := tallinn(t)
	// Tallinn springs forward on 2024-03-31.
	day := kernel.DayFromDate(2024, time.March, 30, loc)

	next := day.AddDays(1)

	assert.Equal(t, "2024-03-31", next.String())
	assert.Equal(t, 0, next.Start().Hour())
}

func TestDay_Ordering(t *testing.T) {
	loc := tallinn(t)
	earlier := kernel.DayFromDate(2024, time.May, 1, loc)
	later := kernel.DayFromDate(2024, time.May, 2, loc)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(kernel.DayFromDate(2024, time.May, 1, loc)))
	assert.False(t, earlier.Equal(later))
}

func TestDay_At(t *testing.T) {
	loc := tallinn(t)
	day := kernel.DayFromDate(2024, time.May, 1, loc)
	offset := kernel.ClockOffset(9*time.Hour + 30*time.Minute)

	assert.Equal(t, time.Date(2024, time.May, 1, 9, 30, 0, 0, loc), day.At(offset))
}

func TestDay_IsZero(t *testing.T) {
	var zero kernel.Day
	assert.True(t, zero.IsZero())
	assert.False(t, kernel.DayFromDate(2024, time.May, 1, time.UTC).IsZero())
}

func TestClockOffsetOf(t *testing.T) {
	loc := tallinn(t)
	instant := time.Date(2024, time.May, 1, 8, 30, 0, 0, loc)

	offset := kernel.ClockOffsetOf(instant, loc)

	assert.Equal(t, kernel.ClockOffset(8*time.Hour+30*time.Minute), offset)
	assert.Equal(t, "08:30", offset.String())
}

func TestClockOffset_MillisRoundTrip(t *testing.T) {
	offset := kernel.ClockOffsetFromMillis(9 * 3600 * 1000)

	assert.Equal(t, kernel.ClockOffset(9*time.Hour), offset)
	assert.Equal(t, int64(9*3600*1000), offset.Millis())
	assert.Equal(t, 9*time.Hour, offset.Duration())
}
