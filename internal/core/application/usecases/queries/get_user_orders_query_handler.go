package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a customer's order history from the
// database, newest first.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for customer order history.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query.
// An unknown user yields an empty list, not an error; the transport decides
// whether that warrants a lookup of the user itself.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service,
			pickup_option,
			delivery_option,
			weight,
			price,
			status,
			rating,
			payment_method,
			payment_status,
			complaint_description,
			complaint_image_url,
			created_at,
			updated_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view OrderView
		err = rows.Scan(
			&view.ID,
			&view.Service,
			&view.PickupOption,
			&view.DeliveryOption,
			&view.Weight,
			&view.Price,
			&view.Status,
			&view.Rating,
			&view.PaymentMethod,
			&view.PaymentStatus,
			&view.ComplaintDescription,
			&view.ComplaintImageURL,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
