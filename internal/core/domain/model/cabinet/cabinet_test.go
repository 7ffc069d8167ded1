package cabinet_test

import (
	"testing"
	"time"

	"lockerfleet/internal/core/domain/model/cabinet"
	"lockerfleet/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCabinet(t *testing.T) *cabinet.Cabinet {
	t.Helper()
	c, err := cabinet.NewCabinet(kernel.NewUUID(), "TERM-001", "Central Station", "Toompuiestee 37")
	require.NoError(t, err)
	return c
}

func TestNewCabinet(t *testing.T) {
	t.Run("should create active cabinet with valid params", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := cabinet.NewCabinet(id, "TERM-001", "Central Station", "Toompuiestee 37")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "TERM-001", c.ExternalID())
		assert.Equal(t, "Central Station", c.Name())
		assert.Equal(t, "Toompuiestee 37", c.Address())
		assert.Equal(t, cabinet.StatusActive, c.Status())
		assert.NoError(t, c.Validate())
	})

	t.Run("should reject empty external id", func(t *testing.T) {
		_, err := cabinet.NewCabinet(kernel.NewUUID(), "", "Central Station", "Toompuiestee 37")
		require.Error(t, err)
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := cabinet.NewCabinet(kernel.UUID{}, "TERM-001", "Central Station", "Toompuiestee 37")
		require.Error(t, err)
	})
}

func TestCabinet_ReconcileStatus(t *testing.T) {
	t.Run("should flip to inactive on deleted flag and report change", func(t *testing.T) {
		c := newTestCabinet(t)

		status, changed := c.ReconcileStatus(true)

		assert.True(t, changed)
		assert.Equal(t, cabinet.StatusInactive, status)
		assert.Equal(t, cabinet.StatusInactive, c.Status())
	})

	t.Run("should not report change when status stays active", func(t *testing.T) {
		c := newTestCabinet(t)

		status, changed := c.ReconcileStatus(false)

		assert.False(t, changed)
		assert.Equal(t, cabinet.StatusActive, status)
	})

	t.Run("should not report change for repeated deleted flag", func(t *testing.T) {
		c := newTestCabinet(t)
		_, _ = c.ReconcileStatus(true)

		_, changed := c.ReconcileStatus(true)

		assert.False(t, changed)
		assert.Equal(t, cabinet.StatusInactive, c.Status())
	})
}

func TestCabinet_UpdateDetails(t *testing.T) {
	t.Run("should update editable fields", func(t *testing.T) {
		c := newTestCabinet(t)
		fee := decimal.RequireFromString("2.50")

		err := c.UpdateDetails("North Hub", 40, fee, "behind the mall")

		require.NoError(t, err)
		assert.Equal(t, "North Hub", c.Name())
		assert.Equal(t, 40, c.MaxOrders())
		assert.True(t, fee.Equal(c.Fee()))
		assert.Equal(t, "behind the mall", c.Description())
		// The address is owned by the terminal platform and stays as is.
		assert.Equal(t, "Toompuiestee 37", c.Address())
	})

	t.Run("should reject negative capacity", func(t *testing.T) {
		c := newTestCabinet(t)

		err := c.UpdateDetails("North Hub", -1, decimal.Zero, "")

		require.Error(t, err)
		assert.Equal(t, "Central Station", c.Name())
	})
}

func TestCabinetStatusChangeLog(t *testing.T) {
	receivedAt := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	eventAt := time.Date(2026, time.March, 2, 9, 59, 0, 0, time.UTC)

	t.Run("should record transition with event time", func(t *testing.T) {
		c := newTestCabinet(t)

		entry, err := cabinet.NewStatusChangeLog(kernel.NewUUID(), c, cabinet.StatusInactive, receivedAt, eventAt)

		require.NoError(t, err)
		assert.True(t, entry.CabinetID().IsEqual(c.ID()))
		assert.Equal(t, cabinet.StatusInactive, entry.Status())
		assert.Equal(t, receivedAt, entry.CreatedAt())
		assert.Equal(t, eventAt, entry.ExtCreatedAt())
		assert.Nil(t, entry.UserID())
	})

	t.Run("should default missing event time to receipt time", func(t *testing.T) {
		c := newTestCabinet(t)

		entry, err := cabinet.NewStatusChangeLog(kernel.NewUUID(), c, cabinet.StatusInactive, receivedAt, time.Time{})

		require.NoError(t, err)
		assert.Equal(t, receivedAt, entry.ExtCreatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		c := newTestCabinet(t)

		_, err := cabinet.NewStatusChangeLog(kernel.NewUUID(), c, cabinet.StatusUnknown, receivedAt, eventAt)
		require.Error(t, err)
	})
}

func TestParseStatus(t *testing.T) {
	status, ok := cabinet.ParseStatus(cabinet.StatusActiveKey)
	assert.True(t, ok)
	assert.Equal(t, cabinet.StatusActive, status)

	status, ok = cabinet.ParseStatus(cabinet.StatusInactiveKey)
	assert.True(t, ok)
	assert.Equal(t, cabinet.StatusInactive, status)

	_, ok = cabinet.ParseStatus("CABINET_STATUS_BROKEN")
	assert.False(t, ok)
}
