// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Email uniqueness lives here as a database constraint; the
// aggregate only validates the format.
package userrepo

import (
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string    `gorm:"type:varchar(128)"`
	Email        string    `gorm:"type:varchar(128);uniqueIndex"`
	Phone        string    `gorm:"type:varchar(32)"`
	Address      string
	PasswordHash string
	Role         string    `gorm:"type:varchar(16)"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		FullName:     aggregate.FullName(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.FullName,
		dto.Email,
		dto.Phone,
		dto.Address,
		dto.PasswordHash,
		dto.Role,
		dto.CreatedAt,
	)
}
