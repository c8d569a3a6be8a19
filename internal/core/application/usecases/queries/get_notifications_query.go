package queries

import (
	"errors"
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/pkg/guard"
)

var (
	ErrGetNotificationsQueryIsNotConstructed = errors.New(
		"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
	)
)

// GetNotificationsQuery retrieves one user's notifications, newest first.
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a user's notifications.
func NewGetNotificationsQuery(userID kernel.UUID) (GetNotificationsQuery, error) {
	notificationsQuery := GetNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := notificationsQuery.setUserID(userID); err != nil {
		return GetNotificationsQuery{}, err
	}

	return notificationsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose notifications are listed.
func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetNotificationsQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// NotificationView is the read model of one notification.
type NotificationView struct {
	ID        kernel.UUID
	OrderID   string
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
