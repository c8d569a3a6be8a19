package commands_test

import (
	"testing"

	"cleanly/internal/core/application/usecases/commands"
	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		userID, order.ServiceWashFold, order.PickupByCourier, order.DeliverySelfPickup,
	)
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, order.ServiceWashFold, cmd.Service())
	assert.Equal(t, order.PickupByCourier, cmd.PickupOption())
	assert.Equal(t, order.DeliverySelfPickup, cmd.DeliveryOption())
}

func TestNewCreateOrderCommand_InvalidUserID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		invalidID, order.ServiceWashFold, order.PickupByCourier, order.DeliverySelfPickup,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingService(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "", order.PickupByCourier, order.DeliverySelfPickup,
	)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_MissingOptions(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.ServiceWashFold, "", "")
	require.Error(t, err)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
