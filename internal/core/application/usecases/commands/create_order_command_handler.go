package commands

import (
	"context"
	"time"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Draws a fresh identifier from the sequence counter, verifies the owning
// user exists and persists the order in "Incoming" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(userID, order.ServiceWashFold,
//	    order.PickupByCourier, order.DeliverySelfPickup)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// placed.ID() is "ORDER-<n>", n drawn atomically from the counter
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The sequence increment, the user existence check and the insert share one
// transaction, so an aborted placement never burns a visible identifier gap
// into a half-written order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	sequence, err := uow.SequenceGenerator().Next(ctx, ports.OrderIDSequence)
	if err != nil {
		return nil, err
	}

	id, err := order.NewID(sequence)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		id,
		cmd.UserID(),
		cmd.Service(),
		cmd.PickupOption(),
		cmd.DeliveryOption(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
