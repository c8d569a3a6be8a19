package queries

import (
	"context"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStageQueryHandler feeds the admin dashboards.
// Each stage maps to a fixed set of lifecycle statuses; rows come back joined
// with the owning customer, newest first.
type GetOrdersByStageQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStageQueryHandler creates a handler for the dashboard listings.
func NewGetOrdersByStageQueryHandler(db *gorm.DB) GetOrdersByStageQueryHandler {
	return GetOrdersByStageQueryHandler{db: db}
}

// stageStatuses maps a dashboard stage to the statuses it covers.
func stageStatuses(stage string) []order.Status {
	switch stage {
	case StageIncoming:
		return []order.Status{order.Incoming}
	case StageOngoing:
		return []order.Status{
			order.Accepted,
			order.ReceivedByFacility,
			order.Washing,
			order.InProgress,
			order.ReadyForPickupOrDelivery,
		}
	case StageCompleted:
		return []order.Status{order.Completed}
	default:
		return nil
	}
}

// Handle executes the dashboard query for one stage.
func (h GetOrdersByStageQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStageQuery,
) ([]OrderWithUserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := stageStatuses(query.Stage())
	labels := make([]string, 0, len(statuses))
	for _, status := range statuses {
		labels = append(labels, status.String())
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
		WHERE o.status IN ?
		ORDER BY o.created_at DESC
	`, labels).Rows()
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
