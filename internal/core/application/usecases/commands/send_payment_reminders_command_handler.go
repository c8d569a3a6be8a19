package commands

import (
	"context"
	"log/slog"
	"time"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/core/ports"
)

// SendPaymentRemindersCommandHandler re-notifies customers whose COD bill
// has gone stale. Run from the scheduled reminder job rather than a request.
type SendPaymentRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	emitter    ports.NotificationEmitter
	logger     *slog.Logger
}

// NewSendPaymentRemindersCommandHandler creates a handler for payment reminders.
func NewSendPaymentRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	emitter ports.NotificationEmitter,
	logger *slog.Logger,
) SendPaymentRemindersCommandHandler {
	return SendPaymentRemindersCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
		logger:     logger,
	}
}

// Handle processes the reminder command.
// The read runs in its own short transaction; reminders go out afterwards,
// one notice per stale order, with individual failures logged and skipped.
func (h *SendPaymentRemindersCommandHandler) Handle(ctx context.Context, cmd SendPaymentRemindersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.OlderThan())
	stale, err := uow.OrderRepository().GetAllBilledBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range stale {
		notice := order.PaymentReminderNotice(aggregate.ID())
		emitNotice(ctx, h.emitter, h.logger, aggregate, &notice)
	}

	return nil
}
