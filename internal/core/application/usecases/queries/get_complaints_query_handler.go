package queries

import (
	"context"

	"cleanly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComplaintsQueryHandler lists complained-about orders for the admin
// dashboard. A complaint exists when the description is non-empty; the
// write-once rule means every row here is final.
type GetComplaintsQueryHandler struct {
	db *gorm.DB
}

// NewGetComplaintsQueryHandler creates a handler for the complaint listing.
func NewGetComplaintsQueryHandler(db *gorm.DB) GetComplaintsQueryHandler {
	return GetComplaintsQueryHandler{db: db}
}

// Handle executes the complaint listing query.
func (h GetComplaintsQueryHandler) Handle(
	ctx context.Context,
	query GetComplaintsQuery,
) ([]OrderWithUserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderWithUserView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.service,
			o.pickup_option,
			o.delivery_option,
			o.weight,
			o.price,
			o.status,
			o.rating,
			o.payment_method,
			o.payment_status,
			o.complaint_description,
			o.complaint_image_url,
			o.created_at,
			o.updated_at,
			u.id,
			u.full_name,
			u.phone,
			u.address
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.complaint_description <> ''
		ORDER BY o.updated_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view OrderWithUserView
		var userID uuid.UUID

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
			&userID,
			&view.UserFullName,
			&view.UserPhone,
			&view.UserAddress,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.UserID = id
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
