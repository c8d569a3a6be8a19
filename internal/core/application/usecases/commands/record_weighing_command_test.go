package commands_test

import (
	"testing"

	"cleanly/internal/core/application/usecases/commands"
	"cleanly/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordWeighingCommand_ValidInput(t *testing.T) {
	id := testOrderID(t)
	weight := decimal.RequireFromString("2.5")
	cmd, err := commands.NewRecordWeighingCommand(id, weight)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.True(t, weight.Equal(cmd.Weight()))
}

func TestNewRecordWeighingCommand_ZeroWeight(t *testing.T) {
	_, err := commands.NewRecordWeighingCommand(testOrderID(t), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}

func TestNewRecordWeighingCommand_NegativeWeight(t *testing.T) {
	_, err := commands.NewRecordWeighingCommand(testOrderID(t), decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}

func TestNewRecordWeighingCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRecordWeighingCommand(order.ID{}, decimal.NewFromInt(3))
	require.Error(t, err)
}

func TestRecordWeighingCommand_NotConstructed(t *testing.T) {
	cmd := commands.RecordWeighingCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrRecordWeighingCommandIsNotConstructed)
}
