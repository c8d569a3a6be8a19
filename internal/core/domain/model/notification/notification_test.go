package notification_test

import (
	"testing"
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/notification"
	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	orderID, err := order.NewID(1)
	require.NoError(t, err)

	t.Run("creates unread notification", func(t *testing.T) {
		n, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(), orderID,
			"Your order has been accepted!", "Order ORDER-1 accepted.", time.Now(),
		)

		require.NoError(t, err)
		assert.False(t, n.IsRead())
		require.NoError(t, n.Validate())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		now := time.Now()

		_, err := notification.NewNotification(id, userID, order.ID{}, "t", "m", now)
		require.Error(t, err)

		_, err = notification.NewNotification(id, userID, orderID, "", "m", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = notification.NewNotification(id, userID, orderID, "t", "", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	orderID, err := order.NewID(2)
	require.NoError(t, err)

	n, err := notification.NewNotification(
		kernel.NewUUID(), kernel.NewUUID(), orderID, "t", "m", time.Now(),
	)
	require.NoError(t, err)

	n.MarkRead()
	assert.True(t, n.IsRead())
}

func TestRestoreNotification(t *testing.T) {
	orderID, err := order.NewID(3)
	require.NoError(t, err)

	n, err := notification.RestoreNotification(
		kernel.NewUUID(), kernel.NewUUID(), orderID, "t", "m", true, time.Now(),
	)
	require.NoError(t, err)
	assert.True(t, n.IsRead())
}
