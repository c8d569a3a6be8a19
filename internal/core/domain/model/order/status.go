package order

import (
	"fmt"

	"cleanly/internal/pkg/errs"
)

// Status represents the lifecycle stage of a laundry order.
// It implements a state machine with an explicit transition table so that
// orders follow the correct business workflow.
//
// State transitions:
//
//	Incoming ──> Accepted ──> ReceivedByFacility ──> Washing ──┬──> InProgress ──┐
//	                                                           │                 │
//	                                                           └─────────────────┴──> ReadyForPickupOrDelivery ──> Completed
//
// InProgress is optional: washing may go straight to ready. The legacy
// backend accepted any free-text status; this enum closes that gap and
// rejects transitions not present in the table.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence, the HTTP API, and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Incoming is the initial status when an order is first placed.
	// Orders in this status are waiting for the facility to accept them.
	Incoming

	// Accepted indicates the facility has accepted the order.
	Accepted

	// ReceivedByFacility indicates the laundry physically arrived and was
	// weighed; the bill exists from this point on.
	ReceivedByFacility

	// Washing indicates the laundry is being washed.
	Washing

	// InProgress indicates post-wash work (drying, ironing, folding).
	// This stage is optional in the workflow.
	InProgress

	// ReadyForPickupOrDelivery indicates the laundry is finished and waiting
	// to be handed back to the customer.
	ReadyForPickupOrDelivery

	// Completed indicates the order has been handed over and settled.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                  "Unknown",
		Incoming:                 "Incoming",
		Accepted:                 "Accepted",
		ReceivedByFacility:       "ReceivedByFacility",
		Washing:                  "Washing",
		InProgress:               "InProgress",
		ReadyForPickupOrDelivery: "ReadyForPickupOrDelivery",
		Completed:                "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Incoming:                 "Incoming",
		Accepted:                 "Accepted",
		ReceivedByFacility:       "ReceivedByFacility",
		Washing:                  "Washing",
		InProgress:               "InProgress",
		ReadyForPickupOrDelivery: "ReadyForPickupOrDelivery",
		Completed:                "Completed",
	}
}

// getTransitionTable returns, for each status, the set of statuses it may
// advance to. Statuses absent from a set are rejected by Advance.
// ApplyWeighing has its own admission rule and does not consult this table.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Incoming:                 {Accepted},
		Accepted:                 {ReceivedByFacility},
		ReceivedByFacility:       {Washing},
		Washing:                  {InProgress, ReadyForPickupOrDelivery},
		InProgress:               {ReadyForPickupOrDelivery},
		ReadyForPickupOrDelivery: {Completed},
		Completed:                {},
	}
}

// StatusFromString parses a status label received from the API into a Status.
// Unknown labels yield a ValueIsInvalidError; callers must not persist
// arbitrary strings as the legacy backend did.
func StatusFromString(label string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == label {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", label),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are every lifecycle stage from Incoming to Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones, which render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAdvanceTo checks whether the transition table permits moving from
// the current status to target, without performing the transition.
func (s Status) ValidateAdvanceTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	for _, next := range getTransitionTable()[s] {
		if next == target {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", s.String(), target.String()),
	)
}

// Advance transitions the status to target.
//
// Returns:
//   - (target, nil) when the transition table permits the move
//   - (0, error) otherwise
//
// This method is used by Order.AdvanceTo to enforce the state machine.
func (s Status) Advance(target Status) (Status, error) {
	if err := s.ValidateAdvanceTo(target); err != nil {
		return 0, err
	}
	return target, nil
}

// NotifiesUser reports whether entering this status emits a customer
// notification. Only Accepted and Washing do; the asymmetry is inherited
// from the legacy backend and kept deliberately.
func (s Status) NotifiesUser() bool {
	return s == Accepted || s == Washing
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// CanBeWeighed reports whether an order in this status may go through
// weighing and pricing. Weighing is allowed before washing starts;
// ReceivedByFacility is included so an erroneous weight can be corrected.
func (s Status) CanBeWeighed() bool {
	return s == Incoming || s == Accepted || s == ReceivedByFacility
}
