package ports

import (
	"context"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"
)

// NotificationEmitter creates a persisted, unread notification for a
// user/order pair.
//
// Emission is fire-and-forget relative to the lifecycle transition that
// produced it: implementations run outside the command's transaction, and
// callers log failures instead of propagating them, so a failed emission
// never rolls back a committed order mutation.
type NotificationEmitter interface {
	Emit(ctx context.Context, userID kernel.UUID, orderID order.ID, title, message string) error
}
