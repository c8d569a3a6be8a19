// Package queries contains read operations in the CQRS architecture.
// Query handlers read straight from the database with raw SQL, bypassing the
// aggregates; they never modify state.
package queries

import (
	"errors"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
	ErrLoginEmailIsRequired    = errors.New("email is required")
	ErrLoginPasswordIsRequired = errors.New("password is required")
)

// LoginQuery verifies a customer's credentials and returns their profile.
// Modeled as a query because it reads state without changing it; the password
// never travels further than the hasher comparison.
type LoginQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a query to authenticate a user by email and password.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	loginQuery := LoginQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loginQuery.setEmail(email),
		loginQuery.setPassword(password),
	); err != nil {
		return LoginQuery{}, err
	}

	return loginQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrLoginQueryIsNotConstructed if validation fails.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the login email address.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plain-text password to verify.
func (q LoginQuery) Password() string {
	return q.password
}

func (q *LoginQuery) setEmail(email string) error {
	if email == "" {
		return ErrLoginEmailIsRequired
	}

	q.email = email
	return nil
}

func (q *LoginQuery) setPassword(password string) error {
	if password == "" {
		return ErrLoginPasswordIsRequired
	}

	q.password = password
	return nil
}

// LoginQueryResponse is the authenticated user's profile.
// The password hash never leaves the handler.
type LoginQueryResponse struct {
	ID       kernel.UUID
	FullName string
	Email    string
	Phone    string
	Address  string
	Role     string
}
