package commands

import (
	"errors"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordWeighingCommandIsNotConstructed = errors.New(
		"RecordWeighingCommand must be created via NewRecordWeighingCommand constructor",
	)
	ErrWeightIsInvalid = errors.New("weight must be greater than 0")
)

// RecordWeighingCommand represents the facility weighing an order's laundry.
// The price is not part of the command: it is recomputed inside the handler
// from the weight and the current price list, never trusted from the caller.
type RecordWeighingCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	weight  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordWeighingCommand creates a command to record a weighing.
// Validates that the order ID is constructed and the weight is positive.
func NewRecordWeighingCommand(orderID order.ID, weight decimal.Decimal) (RecordWeighingCommand, error) {
	weighingCommand := RecordWeighingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		weighingCommand.setOrderID(orderID),
		weighingCommand.setWeight(weight),
	); err != nil {
		return RecordWeighingCommand{}, err
	}

	return weighingCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordWeighingCommandIsNotConstructed if validation fails.
func (c RecordWeighingCommand) Validate() error {
	return c.guard.Validate(ErrRecordWeighingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being weighed.
func (c RecordWeighingCommand) OrderID() order.ID {
	return c.orderID
}

// Weight returns the measured weight in kilograms.
func (c RecordWeighingCommand) Weight() decimal.Decimal {
	return c.weight
}

func (c *RecordWeighingCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordWeighingCommand) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}
