package order

import "fmt"

// Notice is a customer notification produced by a lifecycle transition.
// The aggregate returns it as a value; the application layer persists it
// after the order mutation commits (fire-and-forget), so a failed emission
// never rolls back the transition that produced it.
type Notice struct {
	Title   string
	Message string
}

// noticeForStatus builds the notification emitted when an order enters the
// given status, or nil when that status does not notify. Only Accepted and
// Washing notify; other stages stay silent, matching the legacy behavior.
func noticeForStatus(o *Order, status Status) *Notice {
	switch status {
	case Accepted:
		return &Notice{
			Title:   "Your order has been accepted!",
			Message: fmt.Sprintf("Your %s order %s has been accepted.", o.service, o.id),
		}
	case Washing:
		return &Notice{
			Title:   "Your laundry is being washed",
			Message: fmt.Sprintf("Order %s is now in the wash.", o.id),
		}
	default:
		return nil
	}
}

// billIssuedNotice builds the notification emitted whenever weighing issues
// or reissues a bill. Unlike status notices it is unconditional.
func billIssuedNotice(id ID) *Notice {
	return &Notice{
		Title:   "Your bill is ready!",
		Message: fmt.Sprintf("The bill for order %s has been issued. Please complete the payment.", id),
	}
}

// PaymentReminderNotice builds the notification the reminder job sends for
// orders whose COD bill has been outstanding for too long.
func PaymentReminderNotice(id ID) Notice {
	return Notice{
		Title:   "Payment reminder",
		Message: fmt.Sprintf("Order %s still has an outstanding COD bill. Please settle it on handover.", id),
	}
}
