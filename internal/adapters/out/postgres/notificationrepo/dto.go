// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/notification"
	"cleanly/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	OrderID   string    `gorm:"type:varchar(32)"`
	Title     string    `gorm:"type:varchar(128)"`
	Message   string
	IsRead    bool
	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification entity to its database representation.
func fromDomain(entity *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        entity.ID().Bytes(),
		UserID:    entity.UserID().Bytes(),
		OrderID:   entity.OrderID().String(),
		Title:     entity.Title(),
		Message:   entity.Message(),
		IsRead:    entity.IsRead(),
		CreatedAt: entity.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification entity.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := order.ParseID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		userID,
		orderID,
		dto.Title,
		dto.Message,
		dto.IsRead,
		dto.CreatedAt,
	)
}
