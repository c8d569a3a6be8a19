package commands

import (
	"context"
	"log/slog"
	"time"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/core/domain/services"
	"cleanly/internal/core/ports"
)

// RecordWeighingCommandHandler handles the weighing-and-pricing step.
// Reads the price list inside the same transaction that updates the order,
// so the bill is always priced against one consistent snapshot.
type RecordWeighingCommandHandler struct {
	uowFactory WeighingUoWFactory
	calculator services.PriceCalculator
	emitter    ports.NotificationEmitter
	logger     *slog.Logger
}

// NewRecordWeighingCommandHandler creates a handler for weighing operations.
func NewRecordWeighingCommandHandler(
	uowFactory WeighingUoWFactory,
	calculator services.PriceCalculator,
	emitter ports.NotificationEmitter,
	logger *slog.Logger,
) RecordWeighingCommandHandler {
	return RecordWeighingCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		emitter:    emitter,
		logger:     logger,
	}
}

// Handle processes the weighing command.
// Derives the bill from the weight and the price list, applies it to the
// order (which moves to ReceivedByFacility) and emits the bill-ready notice
// after commit. Weighing an order that is already being washed fails with a
// validation error from the aggregate.
func (h *RecordWeighingCommandHandler) Handle(ctx context.Context, cmd RecordWeighingCommand) (*order.Order, error) {
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

	priceList, err := uow.PriceListRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	price, err := h.calculator.Calculate(
		aggregate.Service(),
		cmd.Weight(),
		aggregate.PickupOption(),
		aggregate.DeliveryOption(),
		priceList,
	)
	if err != nil {
		return nil, err
	}

	notice, err := aggregate.ApplyWeighing(cmd.Weight(), price, time.Now())
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
