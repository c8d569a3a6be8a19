package order

import (
	"fmt"

	"cleanly/internal/pkg/errs"
)

// PaymentMethodCOD is the only payment method this backend accepts.
// Anything else fails confirmation with a validation error.
const PaymentMethodCOD = "COD"

// PaymentStatus tracks the settlement state of an order, orthogonal to the
// lifecycle Status.
//
// State transitions:
//
//	Unpaid ──> CODBilled ──> Paid
//
// Completing an order forces Paid regardless of the current value; that rule
// lives in Order.AdvanceTo.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid is the initial settlement state of every order.
	PaymentUnpaid

	// PaymentCODBilled means the customer confirmed cash-on-delivery and the
	// bill is awaiting settlement.
	PaymentCODBilled

	// PaymentPaid means the bill has been settled.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "Unknown",
		PaymentUnpaid:    "Unpaid",
		PaymentCODBilled: "CODBilled",
		PaymentPaid:      "Paid",
	}
}

// PaymentStatusFromString parses a stored payment status label.
// Unknown labels yield a ValueIsInvalidError.
func PaymentStatusFromString(label string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == label {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a known payment status", label),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if p != PaymentUnpaid && p != PaymentCODBilled && p != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
// Invalid values render as "Unknown".
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
