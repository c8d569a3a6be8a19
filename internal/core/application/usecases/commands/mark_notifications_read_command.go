package commands

import (
	"errors"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/pkg/guard"
)

var (
	ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
		"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
	)
)

// MarkNotificationsReadCommand represents a user clearing their unread
// notification badge: every unread notification of theirs becomes read.
type MarkNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationsReadCommand creates a command to mark a user's
// notifications as read.
func NewMarkNotificationsReadCommand(userID kernel.UUID) (MarkNotificationsReadCommand, error) {
	markCommand := MarkNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := markCommand.setUserID(userID); err != nil {
		return MarkNotificationsReadCommand{}, err
	}

	return markCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkNotificationsReadCommandIsNotConstructed if validation fails.
func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose notifications become read.
func (c MarkNotificationsReadCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *MarkNotificationsReadCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
