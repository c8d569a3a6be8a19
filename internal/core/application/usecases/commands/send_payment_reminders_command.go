package commands

import (
	"errors"
	"time"

	"cleanly/internal/pkg/guard"
)

var (
	ErrSendPaymentRemindersCommandIsNotConstructed = errors.New(
		"SendPaymentRemindersCommand must be created via NewSendPaymentRemindersCommand constructor",
	)
	ErrReminderAgeIsInvalid = errors.New("reminder age must be greater than 0")
)

// SendPaymentRemindersCommand asks for reminder notifications to be sent for
// every order whose COD bill has been outstanding longer than the given age.
type SendPaymentRemindersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewSendPaymentRemindersCommand creates a command to send payment reminders.
func NewSendPaymentRemindersCommand(olderThan time.Duration) (SendPaymentRemindersCommand, error) {
	reminderCommand := SendPaymentRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reminderCommand.setOlderThan(olderThan); err != nil {
		return SendPaymentRemindersCommand{}, err
	}

	return reminderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendPaymentRemindersCommandIsNotConstructed if validation fails.
func (c SendPaymentRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendPaymentRemindersCommandIsNotConstructed)
}

// OlderThan returns the minimum age an outstanding bill must reach before a
// reminder is sent.
func (c SendPaymentRemindersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *SendPaymentRemindersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrReminderAgeIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
