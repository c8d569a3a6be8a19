package order

import (
	"fmt"
	"strconv"
	"strings"

	"cleanly/internal/pkg/errs"
)

// idPrefix is the human-readable prefix of every order identifier.
const idPrefix = "ORDER-"

// ID is the externally visible order identifier, e.g. "ORDER-42".
// It is globally unique, monotonically assigned from the sequence generator,
// never reused, and immutable after creation.
//
// The zero value is invalid; construct with NewID or ParseID.
type ID struct {
	value string
}

// NewID builds an order identifier from a sequence number.
// The sequence number must be positive.
func NewID(sequence int64) (ID, error) {
	if sequence <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("sequence number %d is not greater than 0", sequence),
		)
	}
	return ID{value: idPrefix + strconv.FormatInt(sequence, 10)}, nil
}

// ParseID validates an identifier received from the outside world
// (API path parameters, database rows) and wraps it in an ID.
func ParseID(raw string) (ID, error) {
	suffix, ok := strings.CutPrefix(raw, idPrefix)
	if !ok {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%q does not start with %q", raw, idPrefix),
		)
	}

	sequence, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || sequence <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%q does not carry a positive sequence number", raw),
		)
	}

	return ID{value: raw}, nil
}

// String returns the identifier in its wire form, e.g. "ORDER-42".
func (id ID) String() string {
	return id.value
}

// IsEqual compares two order identifiers.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate checks that the ID was constructed through NewID or ParseID.
func (id ID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	return nil
}
