package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lockerfleet/internal/core/application/usecases/queries"
	"lockerfleet/internal/core/domain/model/kernel"
	"lockerfleet/internal/core/domain/model/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type LockerLogRepo struct {
	mock.Mock
}

func (m *LockerLogRepo) Add(ctx context.Context, entry *locker.Log) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *LockerLogRepo) GetByLocker(ctx context.Context, lockerID kernel.UUID) ([]*locker.Log, error) {
	args := m.Called(ctx, lockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Log), args.Error(1)
}

func (m *LockerLogRepo) GetByCabinet(ctx context.Context, cabinetID kernel.UUID) ([]*locker.Log, error) {
	args := m.Called(ctx, cabinetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Log), args.Error(1)
}

func (m *LockerLogRepo) CountByLocker(ctx context.Context, lockerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, lockerID)
	return args.Get(0).(int64), args.Error(1)
}

func TestGetLockerLogsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	receivedAt := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	lk, err := locker.NewLocker(kernel.NewUUID(), kernel.NewUUID(), "", 3)
	require.NoError(t, err)

	statusEntry, err := locker.NewStatusChangeLog(
		kernel.NewUUID(), lk, locker.StatusInactive, receivedAt, time.Time{})
	require.NoError(t, err)

	manualEntry, err := locker.NewLogFromManualUpdate(kernel.NewUUID(), lk, locker.ManualUpdate{
		StatusKey: "DEFROST",
		Comment:   "compressor check",
	}, receivedAt.Add(time.Hour))
	require.NoError(t, err)

	t.Run("should project changed value per row", func(t *testing.T) {
		repo := new(LockerLogRepo)
		repo.On("GetByLocker", ctx, lk.ID()).
			Return([]*locker.Log{manualEntry, statusEntry}, nil).Once()

		query, qErr := queries.NewGetLockerLogsQuery(lk.ID())
		require.NoError(t, qErr)

		handler := queries.NewGetLockerLogsQueryHandler(repo)
		result, hErr := handler.Handle(ctx, query)

		require.NoError(t, hErr)
		require.Len(t, result, 2)
		// Manual updates surface the raw key as the most specific axis.
		assert.Equal(t, "DEFROST", result[0].ChangedValue)
		assert.Equal(t, "compressor check", result[0].Comment)
		// Hardware rows only touch the operational axis.
		assert.Equal(t, locker.StatusInactive.Key(), result[1].ChangedValue)
		assert.Equal(t, receivedAt, result[1].CreatedAt)
		assert.Equal(t, receivedAt, result[1].ExtCreatedAt)
		repo.AssertExpectations(t)
	})

	t.Run("should propagate repository error", func(t *testing.T) {
		repo := new(LockerLogRepo)
		repo.On("GetByLocker", ctx, lk.ID()).Return(nil, errors.New("query error")).Once()

		query, qErr := queries.NewGetLockerLogsQuery(lk.ID())
		require.NoError(t, qErr)

		handler := queries.NewGetLockerLogsQueryHandler(repo)
		_, hErr := handler.Handle(ctx, query)

		require.Error(t, hErr)
	})

	t.Run("should reject zero-value query", func(t *testing.T) {
		handler := queries.NewGetLockerLogsQueryHandler(new(LockerLogRepo))
		_, hErr := handler.Handle(ctx, queries.GetLockerLogsQuery{})
		require.ErrorIs(t, hErr, queries.ErrGetLockerLogsQueryIsNotConstructed)
	})
}

func TestNewGetLockerLogsQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetLockerLogsQuery(kernel.UUID{})
	require.Error(t, err)
}
