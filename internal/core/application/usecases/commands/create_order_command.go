package commands

import (
	"errors"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new laundry order.
// Encapsulates the owning customer, the ordered service and the fulfillment
// options. The order identifier is not part of the command: it is drawn from
// the sequence counter inside the handler's transaction.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, order.ServiceWashFold,
//	    order.PickupByCourier, order.DeliverySelfPickup)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed", placed.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.UUID
	service        order.ServiceType
	pickupOption   order.PickupOption
	deliveryOption order.DeliveryOption

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new laundry order.
// Validates that the user ID is constructed and that the service and both
// fulfillment options carry known values.
func NewCreateOrderCommand(
	userID kernel.UUID,
	service order.ServiceType,
	pickupOption order.PickupOption,
	deliveryOption order.DeliveryOption,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setService(service),
		orderCommand.setPickupOption(pickupOption),
		orderCommand.setDeliveryOption(deliveryOption),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the owning customer's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Service returns the ordered laundry service.
func (c CreateOrderCommand) Service() order.ServiceType {
	return c.service
}

// PickupOption returns the pickup fulfillment choice.
func (c CreateOrderCommand) PickupOption() order.PickupOption {
	return c.pickupOption
}

// DeliveryOption returns the delivery fulfillment choice.
func (c CreateOrderCommand) DeliveryOption() order.DeliveryOption {
	return c.deliveryOption
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setService(service order.ServiceType) error {
	if err := service.Validate(); err != nil {
		return err
	}

	c.service = service
	return nil
}

func (c *CreateOrderCommand) setPickupOption(option order.PickupOption) error {
	if err := option.Validate(); err != nil {
		return err
	}

	c.pickupOption = option
	return nil
}

func (c *CreateOrderCommand) setDeliveryOption(option order.DeliveryOption) error {
	if err := option.Validate(); err != nil {
		return err
	}

	c.deliveryOption = option
	return nil
}
