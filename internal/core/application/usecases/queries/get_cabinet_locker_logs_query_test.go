package queries_test

import (
	"testing"
	"time"

	"lockerfleet/internal/core/application/usecases/queries"
	"lockerfleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCabinetLockerLogsQuery(t *testing.T) {
	cabinetID := kernel.NewUUID()
	from := kernel.DayFromDate(2026, time.March, 1, time.UTC)
	to := kernel.DayFromDate(2026, time.March, 7, time.UTC)

	t.Run("should accept a valid range", func(t *testing.T) {
		query, err := queries.NewGetCabinetLockerLogsQuery(cabinetID, from, to, "")
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.CabinetID().IsEqual(cabinetID))
		assert.True(t, query.From().Equal(from))
		assert.True(t, query.To().Equal(to))
		assert.Empty(t, query.TempMode())
	})

	t.Run("should accept a single day range", func(t *testing.T) {
		_, err := queries.NewGetCabinetLockerLogsQuery(cabinetID, from, from, "DEFROST")
		require.NoError(t, err)
	})

	t.Run("should reject an inverted range", func(t *testing.T) {
		_, err := queries.NewGetCabinetLockerLogsQuery(cabinetID, to, from, "")
		require.ErrorIs(t, err, queries.ErrDayRangeIsInvalid)
	})

	t.Run("should reject a zero day", func(t *testing.T) {
		_, err := queries.NewGetCabinetLockerLogsQuery(cabinetID, kernel.Day{}, to, "")
		require.Error(t, err)
	})

	t.Run("should reject an invalid cabinet id", func(t *testing.T) {
		_, err := queries.NewGetCabinetLockerLogsQuery(kernel.UUID{}, from, to, "")
		require.Error(t, err)
	})
}

func TestGetCabinetLockerLogsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCabinetLockerLogsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCabinetLockerLogsQueryIsNotConstructed)
}
