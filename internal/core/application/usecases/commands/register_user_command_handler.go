package commands

import (
	"context"
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/user"
	"cleanly/internal/core/ports"
)

// RegisterUserCommandHandler handles new customer registrations.
// Hashes the password before anything touches storage; email uniqueness is
// enforced by the repository's constraint and surfaces as a conflict.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// Returns an ObjectAlreadyExistsError when the email is already registered.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		cmd.FullName(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Address(),
		passwordHash,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
