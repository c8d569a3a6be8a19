// Package notification contains the Notification entity: a persisted
// customer message created as a side effect of order lifecycle transitions
// and billing events.
package notification

import (
	"errors"
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was
	// not created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification or RestoreNotification",
	)
)

// Notification is a message shown to a customer about one of their orders.
// It starts unread and can be marked read or deleted by its owner.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	orderID   order.ID
	title     string
	message   string
	isRead    bool
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread notification for the given user/order pair.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	orderID order.ID,
	title string,
	message string,
	now time.Time,
) (*Notification, error) {
	n := &Notification{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setOrderID(orderID),
		n.setTitle(title),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	orderID order.ID,
	title string,
	message string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, orderID, title, message, createdAt)
	if err != nil {
		return nil, err
	}
	n.isRead = isRead
	return n, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the recipient's identifier.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// OrderID returns the associated order's identifier.
func (n *Notification) OrderID() order.ID {
	return n.orderID
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the body text.
func (n *Notification) Message() string {
	return n.message
}

// IsRead reports whether the recipient has seen the notification.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// CreatedAt returns the emission timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flags the notification as seen.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	n.userID = userID
	return nil
}

func (n *Notification) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	n.orderID = orderID
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}
