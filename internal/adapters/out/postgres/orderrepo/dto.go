// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and payment status are stored as their string labels so the raw SQL
// read models and the revenue aggregation can filter on them directly.
// Timestamps are owned by the aggregate, not by GORM's auto-tracking.
type OrderDTO struct {
	ID                   string          `gorm:"type:varchar(32);primaryKey"`
	UserID               uuid.UUID       `gorm:"type:uuid;index"`
	Service              string          `gorm:"type:varchar(64)"`
	PickupOption         string          `gorm:"type:varchar(32)"`
	DeliveryOption       string          `gorm:"type:varchar(32)"`
	Weight               decimal.Decimal `gorm:"type:numeric(10,2)"`
	Price                decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status               string          `gorm:"type:varchar(32);index"`
	Rating               int
	PaymentMethod        string `gorm:"type:varchar(16)"`
	PaymentStatus        string `gorm:"type:varchar(16);index"`
	ComplaintDescription string
	ComplaintImageURL    string
	CreatedAt            time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime:false;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                   aggregate.ID().String(),
		UserID:               aggregate.UserID().Bytes(),
		Service:              string(aggregate.Service()),
		PickupOption:         string(aggregate.PickupOption()),
		DeliveryOption:       string(aggregate.DeliveryOption()),
		Weight:               aggregate.Weight(),
		Price:                aggregate.Price(),
		Status:               aggregate.Status().String(),
		Rating:               aggregate.Rating(),
		PaymentMethod:        aggregate.PaymentMethod(),
		PaymentStatus:        aggregate.PaymentStatus().String(),
		ComplaintDescription: aggregate.ComplaintDescription(),
		ComplaintImageURL:    aggregate.ComplaintImageURL(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-validates
// every invariant on the way out of storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := order.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		order.ServiceType(dto.Service),
		order.PickupOption(dto.PickupOption),
		order.DeliveryOption(dto.DeliveryOption),
		dto.Weight,
		dto.Price,
		status,
		dto.Rating,
		dto.PaymentMethod,
		paymentStatus,
		dto.ComplaintDescription,
		dto.ComplaintImageURL,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
