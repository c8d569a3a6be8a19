package commands

import (
	"context"
	"log/slog"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/core/ports"
)

// emitNotice delivers a lifecycle notice after the surrounding transaction
// has committed. Emission is fire-and-forget: failures are logged and never
// propagated, so a committed order mutation is never undone by a
// notification problem.
func emitNotice(
	ctx context.Context,
	emitter ports.NotificationEmitter,
	logger *slog.Logger,
	aggregate *order.Order,
	notice *order.Notice,
) {
	if notice == nil {
		return
	}

	err := emitter.Emit(ctx, aggregate.UserID(), aggregate.ID(), notice.Title, notice.Message)
	if err != nil {
		logger.Warn("notification emission failed",
			"orderId", aggregate.ID().String(),
			"error", err)
	}
}
