package commands

import (
	"errors"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// ConfirmPaymentCommand represents the customer choosing a payment method
// for their bill. Only cash on delivery is accepted; the aggregate rejects
// anything else.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	method  string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm an order's payment method.
func NewConfirmPaymentCommand(orderID order.ID, method string) (ConfirmPaymentCommand, error) {
	paymentCommand := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setMethod(method),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmPaymentCommandIsNotConstructed if validation fails.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c ConfirmPaymentCommand) OrderID() order.ID {
	return c.orderID
}

// Method returns the chosen payment method.
func (c ConfirmPaymentCommand) Method() string {
	return c.method
}

func (c *ConfirmPaymentCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}

	c.method = method
	return nil
}
