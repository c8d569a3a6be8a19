package jobs

import (
	"context"
	"log/slog"
	"time"

	"cleanly/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reminderAge is how long a COD bill may sit unsettled before the customer
// gets a reminder.
const reminderAge = 24 * time.Hour

// PaymentReminderJob re-notifies customers with stale cash-on-delivery bills.
// Runs once a day at 08:00 server time.
type PaymentReminderJob struct {
	handler commands.SendPaymentRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReminderJob creates a new job for sending payment reminders.
func NewPaymentReminderJob(handler commands.SendPaymentRemindersCommandHandler, logger *slog.Logger) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_reminder_job"),
	}
}

// Start schedules the payment reminder job.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 8 * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSendPaymentRemindersCommand(reminderAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Payment reminder command invalid", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment reminder job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started (running daily at 08:00)")
	return nil
}

// Stop stops the payment reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}
