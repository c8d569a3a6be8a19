package commands_test

import (
	"testing"

	"cleanly/internal/core/application/usecases/commands"
	"cleanly/internal/core/domain/model/user"
	"cleanly/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand(
		"Budi Santoso", "budi@example.com", "0812000111", "Jl. Melati 1", "s3cret",
	)

	hasher := new(MockPasswordHasher)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		hasher.On("Hash", "s3cret").Return("$2a$10$hashedvalue", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	registered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "budi@example.com", registered.Email())
	require.Equal(t, "$2a$10$hashedvalue", registered.PasswordHash())
	require.Equal(t, user.RoleUser, registered.Role())
	hasher.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand("Budi", "budi@example.com", "", "", "s3cret")

	hasher := new(MockPasswordHasher)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		hasher.On("Hash", "s3cret").Return("$2a$10$hashedvalue", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).
			Return(errs.NewObjectAlreadyExistsError("email", "budi@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_InvalidEmailFormat(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand("Budi", "not-an-email", "", "", "s3cret")

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("$2a$10$hashedvalue", nil).Once()

	factory := new(MockUserUoWFactory)

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}
