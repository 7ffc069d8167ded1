package queries_test

import (
	"context"
	"testing"
	"time"

	"lockerfleet/internal/core/application/usecases/queries"
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

type slotConfigsStub struct {
	configs []*timeslot.Config
}

func (s slotConfigsStub) GetByCabinetOrderedByStart(_ context.Context, _ kernel.UUID) ([]*timeslot.Config, error) {
	return s.configs, nil
}

type routeVersionsStub struct{}

func (routeVersionsStub) GetVersion(_ context.Context, _ kernel.UUID) (*route.Version, error) {
	return nil, nil
}

type deliveryCountStub struct {
	count int
}

func (s deliveryCountStub) CountForSlotOnDay(_ context.Context, _ kernel.Day, _ kernel.UUID) (int, error) {
	return s.count, nil
}

func offsetHours(hours int) kernel.ClockOffset {
	return kernel.ClockOffsetFromMillis(int64(hours) * 60 * 60 * 1000)
}

func TestNewGetSlotAvailabilityQuery(t *testing.T) {
	t.Run("should reject invalid cabinet id", func(t *testing.T) {
		_, err := queries.NewGetSlotAvailabilityQuery(kernel.UUID{}, 7)
		require.Error(t, err)
	})

	t.Run("should accept non-positive horizon", func(t *testing.T) {
		query, err := queries.NewGetSlotAvailabilityQuery(kernel.NewUUID(), 0)
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, 0, query.Days())
	})
}

func TestGetSlotAvailabilityQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSlotAvailabilityQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSlotAvailabilityQueryIsNotConstructed)
}

func TestGetSlotAvailabilityQueryHandler_Handle(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	cabinetID := kernel.NewUUID()

	cfg, err := timeslot.NewConfig(
		kernel.NewUUID(), cabinetID, kernel.NewUUID(),
		offsetHours(14), offsetHours(16), offsetHours(12),
		5, timeslot.ZeroFee(),
	)
	require.NoError(t, err)

	availability := services.NewSlotAvailability(
		slotConfigsStub{configs: []*timeslot.Config{cfg}},
		routeVersionsStub{},
		deliveryCountStub{count: 0},
		fixedClock{now: now},
		time.UTC,
	)
	handler := queries.NewGetSlotAvailabilityQueryHandler(availability)

	t.Run("should project day buckets", func(t *testing.T) {
		query, qErr := queries.NewGetSlotAvailabilityQuery(cabinetID, 2)
		require.NoError(t, qErr)

		result, hErr := handler.Handle(t.Context(), query)

		require.NoError(t, hErr)
		require.Len(t, result, 2)
		assert.Equal(t, kernel.DayOf(now, time.UTC), result[0].Date)
		assert.Equal(t, kernel.DayOf(now, time.UTC).AddDays(1), result[1].Date)
		require.Len(t, result[0].Slots, 1)
		slot := result[0].Slots[0]
		assert.True(t, slot.ConfigID.IsEqual(cfg.ID()))
		assert.Equal(t, offsetHours(14), slot.StartTime)
		assert.Equal(t, offsetHours(16), slot.EndTime)
		assert.Equal(t, "0.00", slot.Fee)
		assert.Equal(t, timeslot.StatusAvailable.Key(), slot.Status)
	})

	t.Run("should return empty result for zero horizon", func(t *testing.T) {
		query, qErr := queries.NewGetSlotAvailabilityQuery(cabinetID, 0)
		require.NoError(t, qErr)

		result, hErr := handler.Handle(t.Context(), query)

		require.NoError(t, hErr)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("should reject zero-value query", func(t *testing.T) {
		_, hErr := handler.Handle(t.Context(), queries.GetSlotAvailabilityQuery{})
		require.Error(t, hErr)
	})
}
