// Package user contains the User aggregate: the identity holder referenced
// by every order. Credentials are stored as bcrypt hashes only; the aggregate
// never sees a plain-text password after registration.
package user

import (
	"errors"
	"net/mail"
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/pkg/errs"
)

// Roles a user can hold. Registration always produces RoleUser; admin
// accounts are provisioned out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User represents a registered customer or administrator.
//
// Invariants:
//   - Email is required, well-formed, and unique (uniqueness is enforced by
//     the repository's constraint; the aggregate validates the format)
//   - The stored credential is always a hash, never plain text
//   - Role defaults to "user"
type User struct {
	id           kernel.UUID
	fullName     string
	email        string
	phone        string
	address      string
	passwordHash string
	role         string
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a freshly registered user with the default role.
// passwordHash must already be hashed; the aggregate rejects empty values
// but cannot tell a hash from plain text, so hashing is the caller's duty.
func NewUser(
	id kernel.UUID,
	fullName string,
	email string,
	phone string,
	address string,
	passwordHash string,
	now time.Time,
) (*User, error) {
	u := &User{
		role:          RoleUser,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setFullName(fullName),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	u.phone = phone
	u.address = address
	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(
	id kernel.UUID,
	fullName string,
	email string,
	phone string,
	address string,
	passwordHash string,
	role string,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:         phone,
		address:       address,
		role:          role,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if u.role == "" {
		u.role = RoleUser
	}

	if err := errors.Join(
		u.setID(id),
		u.setFullName(fullName),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.fullName
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Address returns the user's street address, possibly empty.
func (u *User) Address() string {
	return u.address
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role, "user" or "admin".
func (u *User) Role() string {
	return u.role
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	u.fullName = fullName
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}
