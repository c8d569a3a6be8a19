package queries

import (
	"errors"
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
)

// GetUserOrdersQuery retrieves one customer's order history, newest first.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a customer's orders.
func NewGetUserOrdersQuery(userID kernel.UUID) (GetUserOrdersQuery, error) {
	ordersQuery := GetUserOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := ordersQuery.setUserID(userID); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the customer whose orders are listed.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetUserOrdersQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// OrderView is the flat read model of an order as the API exposes it.
// Shared by the customer history and the admin dashboards; admin views add
// customer fields via OrderWithUserView.
type OrderView struct {
	ID                   string
	Service              string
	PickupOption         string
	DeliveryOption       string
	Weight               decimal.Decimal
	Price                decimal.Decimal
	Status               string
	Rating               int
	PaymentMethod        string
	PaymentStatus        string
	ComplaintDescription string
	ComplaintImageURL    string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
