package commands

import (
	"errors"

	"cleanly/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrFullNameIsRequired = errors.New("full name is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a new customer registration.
// Carries the plain-text password exactly once, from the transport to the
// hasher; it is never persisted or logged.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	fullName string
	email    string
	phone    string
	address  string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Full name, email and password are required; phone and address are optional.
// Email format is validated by the user aggregate, not here.
func NewRegisterUserCommand(fullName, email, phone, address, password string) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setFullName(fullName),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	registerCommand.phone = phone
	registerCommand.address = address
	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// FullName returns the new user's display name.
func (c RegisterUserCommand) FullName() string {
	return c.fullName
}

// Email returns the new user's email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Phone returns the new user's phone number, possibly empty.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Address returns the new user's street address, possibly empty.
func (c RegisterUserCommand) Address() string {
	return c.address
}

// Password returns the plain-text password to be hashed.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
