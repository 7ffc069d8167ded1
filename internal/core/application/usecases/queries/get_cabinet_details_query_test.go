package queries_test

import (
	"testing"

	"lockerfleet/internal/core/application/usecases/queries"
	"lockerfleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCabinetDetailsQuery(t *testing.T) {
	t.Run("valid cabinet id", func(t *testing.T) {
		cabinetID := kernel.NewUUID()

		query, err := queries.NewGetCabinetDetailsQuery(cabinetID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, cabinetID, query.CabinetID())
	})

	t.Run("zero cabinet id", func(t *testing.T) {
		_, err := queries.NewGetCabinetDetailsQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetCabinetDetailsQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetCabinetDetailsQueryIsNotConstructed)
	})
}

func TestNewGetCabinetLockersQuery(t *testing.T) {
	t.Run("valid cabinet id", func(t *testing.T) {
		cabinetID := kernel.NewUUID()

		query, err := queries.NewGetCabinetLockersQuery(cabinetID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, cabinetID, query.CabinetID())
	})

	t.Run("zero cabinet id", func(t *testing.T) {
		_, err := queries.NewGetCabinetLockersQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetCabinetLockersQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetCabinetLockersQueryIsNotConstructed)
	})
}
