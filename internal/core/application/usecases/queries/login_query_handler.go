package queries

import (
	"context"
	"database/sql"
	"errors"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/ports"
	"cleanly/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginQueryHandler authenticates users against their stored bcrypt hash.
//
// An unknown email and a wrong password both produce the same
// AuthenticationError, so the response never reveals whether an address is
// registered.
type LoginQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

// NewLoginQueryHandler creates a handler for login attempts.
func NewLoginQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) LoginQueryHandler {
	return LoginQueryHandler{db: db, hasher: hasher}
}

// Handle executes the login query.
// Returns the user's profile on success and an AuthenticationError on any
// credential mismatch.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	var (
		id           uuid.UUID
		fullName     string
		email        string
		phone        string
		address      string
		passwordHash string
		role         string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			email,
			phone,
			address,
			password_hash,
			role
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(&id, &fullName, &email, &phone, &address, &passwordHash, &role)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return LoginQueryResponse{}, errs.NewAuthenticationError()
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if err = h.hasher.Compare(passwordHash, query.Password()); err != nil {
		return LoginQueryResponse{}, errs.NewAuthenticationError()
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{
		ID:       userID,
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Address:  address,
		Role:     role,
	}, nil
}
