// Package passwords provides credential hashing and verification.
// Plain-text comparison of stored credentials is deliberately not offered;
// every credential is stored as a bcrypt hash and verified by comparison.
package passwords

import (
	"golang.org/x/crypto/bcrypt"

	"cleanly/internal/pkg/errs"
)

// BcryptHasher hashes and verifies passwords with bcrypt.
// The zero value uses bcrypt's default cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the default bcrypt cost.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost creates a BcryptHasher with an explicit cost.
// Lower costs are useful in tests.
func NewBcryptHasherWithCost(cost int) BcryptHasher {
	return BcryptHasher{cost: cost}
}

// Hash derives a bcrypt hash from the plain-text password.
func (h BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	cost := h.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies the plain-text password against a stored hash.
// Returns an AuthenticationError on mismatch so callers never need to
// inspect bcrypt internals.
func (h BcryptHasher) Compare(hashed, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errs.NewAuthenticationErrorWithCause(err)
	}
	return nil
}
