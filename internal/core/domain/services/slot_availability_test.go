package services_test

import (
	"context"
	"testing"
	"time"

	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/route"
	"lockerfleet/internal/core/domain/model/timeslot"
	"lockerfleet/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type stubConfigs struct {
	configs []*timeslot.Config
	err     error
}

func (s stubConfigs) GetByCabinetOrderedByStart(_ context.Context, _ kernel.UUID) ([]*timeslot.Config, error) {
	return s.configs, s.err
}

type stubVersions struct {
	versions map[kernel.UUID]*route.Version
}

func (s stubVersions) GetVersion(_ context.Context, id kernel.UUID) (*route.Version, error) {
	return s.versions[id], nil
}

type stubCounter struct {
	counts map[string]int
}

func (s stubCounter) CountForSlotOnDay(_ context.Context, day kernel.Day, configID kernel.UUID) (int, error) {
	return s.counts[day.String()+"/"+configID.String()], nil
}

func mustZone(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Tallinn")
	require.NoError(t, err)
	return loc
}

func offset(h, m int) kernel.ClockOffset {
	return kernel.ClockOffset(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func newConfig(t *testing.T, cabinetID, versionID kernel.UUID, start, cutoff kernel.ClockOffset, maxOrders int) *timeslot.Config {
	t.Helper()
	cfg, err := timeslot.NewConfig(
		kernel.NewUUID(), cabinetID, versionID,
		start, kernel.ClockOffset(time.Duration(start)+time.Hour), cutoff,
		maxOrders, timeslot.ZeroFee(),
	)
	require.NoError(t, err)
	return cfg
}

func openEndedVersion(t *testing.T, validFrom time.Time) *route.Version {
	t.Helper()
	v, err := route.NewVersion(kernel.NewUUID(), kernel.NewUUID(), "v1", validFrom, nil)
	require.NoError(t, err)
	return v
}

func TestSlotAvailability_ForPeriod(t *testing.T) {
	loc := mustZone(t)
	cabinetID := kernel.NewUUID()
	ctx := context.Background()

	// A route version valid since well before every test day.
	versionFrom := time.Date(2025, time.January, 1, 0, 0, 0, 0, loc)

	t.Run("should return empty sequence for zero or negative period", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		cfg := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(8, 30), 1)

		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{},
			fixedClock{now: time.Date(2026, time.March, 2, 8, 0, 0, 0, loc)},
			loc,
		)

		for _, days := range []int{0, -1, -100} {
			buckets, err := engine.ForPeriod(ctx, cabinetID, days)
			require.NoError(t, err)
			assert.Empty(t, buckets)
		}
	})

	t.Run("should return one bucket per day ordered by slot start", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		morning := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(8, 30), 5)
		evening := newConfig(t, cabinetID, version.ID(), offset(18, 0), offset(17, 0), 5)

		now := time.Date(2026, time.March, 2, 7, 0, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{morning, evening}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		buckets, err := engine.ForPeriod(ctx, cabinetID, 3)
		require.NoError(t, err)
		require.Len(t, buckets, 3)

		today := kernel.DayOf(now, loc)
		for i, bucket := range buckets {
			assert.True(t, bucket.Day.Equal(today.AddDays(i)))
			require.Len(t, bucket.Slots, 2)
			assert.True(t, bucket.Slots[0].StartTime.Duration() < bucket.Slots[1].StartTime.Duration())
		}
	})

	t.Run("should mark slot unavailable when capacity is reached regardless of time", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		cfg := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(8, 30), 2)

		// Well before the cutoff.
		now := time.Date(2026, time.March, 2, 6, 0, 0, 0, loc)
		today := kernel.DayOf(now, loc)

		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{counts: map[string]int{
				today.String() + "/" + cfg.ID().String():            2,
				today.AddDays(1).String() + "/" + cfg.ID().String(): 3,
			}},
			fixedClock{now: now},
			loc,
		)

		buckets, err := engine.ForPeriod(ctx, cabinetID, 2)
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusUnavailable, buckets[0].Slots[0].Status)
		assert.Equal(t, timeslot.StatusUnavailable, buckets[1].Slots[0].Status)
	})

	t.Run("should close today's slot after the picking cutoff", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		cfg := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(8, 30), 1)

		now := time.Date(2026, time.March, 2, 8, 45, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		buckets, err := engine.ForPeriod(ctx, cabinetID, 2)
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusUnavailable, buckets[0].Slots[0].Status)
		// The cutoff only applies to today; tomorrow stays open.
		assert.Equal(t, timeslot.StatusAvailable, buckets[1].Slots[0].Status)
	})

	t.Run("should close today's slot when route version expired and picking started", func(t *testing.T) {
		until := time.Date(2026, time.February, 28, 23, 59, 59, 0, loc)
		expired, err := route.NewVersion(kernel.NewUUID(), kernel.NewUUID(), "v1", versionFrom, &until)
		require.NoError(t, err)

		cfg := newConfig(t, cabinetID, expired.ID(), offset(9, 0), offset(8, 30), 1)

		now := time.Date(2026, time.March, 2, 8, 45, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{versions: map[kernel.UUID]*route.Version{expired.ID(): expired}},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		buckets, err := engine.ForPeriod(ctx, cabinetID, 1)
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusUnavailable, buckets[0].Slots[0].Status)
	})

	t.Run("should keep slot open before cutoff with free capacity", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		cfg := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(8, 30), 1)

		now := time.Date(2026, time.March, 2, 8, 0, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		buckets, err := engine.ForPeriod(ctx, cabinetID, 1)
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusAvailable, buckets[0].Slots[0].Status)
	})

	t.Run("should propagate missing validFrom as an error once cutoff passed", func(t *testing.T) {
		version, err := route.NewVersion(kernel.NewUUID(), kernel.NewUUID(), "v1", time.Time{}, nil)
		require.NoError(t, err)

		cfg := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(8, 30), 1)

		now := time.Date(2026, time.March, 2, 8, 45, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		_, err = engine.ForPeriod(ctx, cabinetID, 1)
		require.Error(t, err)
	})

	t.Run("should fail when route version cannot be resolved after cutoff", func(t *testing.T) {
		cfg := newConfig(t, cabinetID, kernel.NewUUID(), offset(9, 0), offset(8, 30), 1)

		now := time.Date(2026, time.March, 2, 8, 45, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		_, err := engine.ForPeriod(ctx, cabinetID, 1)
		require.ErrorIs(t, err, services.ErrRouteVersionNotFound)
	})
}

func TestSlotAvailability_EndToEnd(t *testing.T) {
	loc := mustZone(t)
	cabinetID := kernel.NewUUID()
	ctx := context.Background()

	versionFrom := time.Date(2025, time.January, 1, 0, 0, 0, 0, loc)

	build := func(version *route.Version, counts map[string]int, now time.Time) *services.SlotAvailability {
		cfgVersion := map[kernel.UUID]*route.Version{version.ID(): version}
		cfg := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(8, 30), 1)
		return services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{versions: cfgVersion},
			stubCounter{counts: counts},
			fixedClock{now: now},
			loc,
		)
	}

	t.Run("open slot before cutoff with no bookings", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		engine := build(version, nil, time.Date(2026, time.March, 2, 8, 0, 0, 0, loc))

		buckets, err := engine.ForPeriod(ctx, cabinetID, 1)
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusAvailable, buckets[0].Slots[0].Status)
	})

	t.Run("full slot is closed even before cutoff", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		cfg := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(8, 30), 1)
		now := time.Date(2026, time.March, 2, 8, 0, 0, 0, loc)
		today := kernel.DayOf(now, loc)

		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{cfg}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{counts: map[string]int{today.String() + "/" + cfg.ID().String(): 1}},
			fixedClock{now: now},
			loc,
		)

		buckets, err := engine.ForPeriod(ctx, cabinetID, 1)
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusUnavailable, buckets[0].Slots[0].Status)
	})

	t.Run("inactive route closes slot after cutoff with zero bookings", func(t *testing.T) {
		until := time.Date(2026, time.February, 1, 12, 0, 0, 0, loc)
		expired, err := route.NewVersion(kernel.NewUUID(), kernel.NewUUID(), "v1", versionFrom, &until)
		require.NoError(t, err)

		engine := build(expired, nil, time.Date(2026, time.March, 2, 8, 45, 0, 0, loc))

		buckets, err := engine.ForPeriod(ctx, cabinetID, 1)
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusUnavailable, buckets[0].Slots[0].Status)
	})
}

func TestSlotAvailability_NextBookable(t *testing.T) {
	loc := mustZone(t)
	cabinetID := kernel.NewUUID()
	ctx := context.Background()

	versionFrom := time.Date(2025, time.January, 1, 0, 0, 0, 0, loc)

	t.Run("should skip slots whose start has passed and take first available", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		morning := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(20, 0), 5)
		noon := newConfig(t, cabinetID, version.ID(), offset(12, 0), offset(20, 0), 5)
		evening := newConfig(t, cabinetID, version.ID(), offset(18, 0), offset(20, 0), 5)

		now := time.Date(2026, time.March, 2, 10, 0, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{morning, noon, evening}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		slot, found, err := engine.NextBookable(ctx, cabinetID)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, slot.ConfigID.IsEqual(noon.ID()))
	})

	t.Run("should skip full slots when scanning", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		noon := newConfig(t, cabinetID, version.ID(), offset(12, 0), offset(20, 0), 1)
		evening := newConfig(t, cabinetID, version.ID(), offset(18, 0), offset(20, 0), 1)

		now := time.Date(2026, time.March, 2, 10, 0, 0, 0, loc)
		today := kernel.DayOf(now, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{noon, evening}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{counts: map[string]int{today.String() + "/" + noon.ID().String(): 1}},
			fixedClock{now: now},
			loc,
		)

		slot, found, err := engine.NextBookable(ctx, cabinetID)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, slot.ConfigID.IsEqual(evening.ID()))
	})

	t.Run("should still book a slot starting exactly now", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		noon := newConfig(t, cabinetID, version.ID(), offset(12, 0), offset(20, 0), 5)

		now := time.Date(2026, time.March, 2, 12, 0, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{noon}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		slot, found, err := engine.NextBookable(ctx, cabinetID)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, slot.ConfigID.IsEqual(noon.ID()))
	})

	t.Run("should report nothing bookable when all starts have passed", func(t *testing.T) {
		version := openEndedVersion(t, versionFrom)
		morning := newConfig(t, cabinetID, version.ID(), offset(9, 0), offset(20, 0), 5)

		now := time.Date(2026, time.March, 2, 21, 0, 0, 0, loc)
		engine := services.NewSlotAvailability(
			stubConfigs{configs: []*timeslot.Config{morning}},
			stubVersions{versions: map[kernel.UUID]*route.Version{version.ID(): version}},
			stubCounter{},
			fixedClock{now: now},
			loc,
		)

		_, found, err := engine.NextBookable(ctx, cabinetID)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
