package commands

import (
	"context"
	"log/slog"
	"time"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler handles lifecycle transitions.
// The aggregate enforces the transition table and reports whether the new
// stage notifies the customer; the handler persists the move and emits the
// notice after commit.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	emitter    ports.NotificationEmitter
	logger     *slog.Logger
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advancement.
// The emitter runs outside the transaction; its failures are logged through
// logger and never fail the command.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	emitter ports.NotificationEmitter,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
		logger:     logger,
	}
}

// Handle processes the status advancement command.
// Out-of-table transitions surface as validation errors from the aggregate.
// Entering Completed settles the payment; entering Accepted or Washing
// notifies the customer once the transaction has committed.
func (h *AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	notice, err := aggregate.AdvanceTo(cmd.Target(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	emitNotice(ctx, h.emitter, h.logger, aggregate, notice)

	return aggregate, nil
}
