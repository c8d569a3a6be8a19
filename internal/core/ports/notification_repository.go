package ports

import (
	"context"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Delete removes a notification by identifier.
	// Returns an ObjectNotFoundError when no such notification exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// MarkAllRead flags every unread notification of the user as read.
	MarkAllRead(ctx context.Context, userID kernel.UUID) error
}
