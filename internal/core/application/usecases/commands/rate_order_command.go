package commands

import (
	"errors"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/guard"
)

var (
	ErrRateOrderCommandIsNotConstructed = errors.New(
		"RateOrderCommand must be created via NewRateOrderCommand constructor",
	)
	ErrRatingIsOutOfRange = errors.New("rating must be between 1 and 5")
)

// RateOrderCommand represents a customer rating an order from 1 to 5.
// Rating is accepted in any lifecycle stage and a repeat overwrites the
// previous value.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	rating  int

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate an order.
// Validates that the order ID is constructed and the rating is within 1..5.
func NewRateOrderCommand(orderID order.ID, rating int) (RateOrderCommand, error) {
	ratingCommand := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ratingCommand.setOrderID(orderID),
		ratingCommand.setRating(rating),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return ratingCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRateOrderCommandIsNotConstructed if validation fails.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rated.
func (c RateOrderCommand) OrderID() order.ID {
	return c.orderID
}

// Rating returns the rating value, between 1 and 5.
func (c RateOrderCommand) Rating() int {
	return c.rating
}

func (c *RateOrderCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingIsOutOfRange
	}

	c.rating = rating
	return nil
}
