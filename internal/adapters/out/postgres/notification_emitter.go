package postgres

import (
	"context"
	"time"

	"cleanly/internal/adapters/out/postgres/notificationrepo"
	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/notification"
	"cleanly/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormNotificationEmitter persists notifications on the base connection,
// outside of any command transaction. Lifecycle handlers call it after commit
// and only log failures, so a lost notification never rolls back an order.
type GormNotificationEmitter struct {
	db *gorm.DB
}

// NewGormNotificationEmitter creates a notification emitter bound to the base
// database connection.
func NewGormNotificationEmitter(db *gorm.DB) *GormNotificationEmitter {
	return &GormNotificationEmitter{db: db}
}

// Emit creates and stores a new unread notification.
func (e *GormNotificationEmitter) Emit(
	ctx context.Context,
	userID kernel.UUID,
	orderID order.ID,
	title, message string,
) error {
	entity, err := notification.NewNotification(
		kernel.NewUUID(),
		userID,
		orderID,
		title,
		message,
		time.Now(),
	)
	if err != nil {
		return err
	}

	repo := notificationrepo.NewGormNotificationRepository(e.db, noopTracker{})
	return repo.Add(ctx, entity)
}

// noopTracker satisfies the repository's tracker dependency for emissions that
// happen outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}
