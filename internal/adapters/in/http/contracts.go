package http

import (
	"time"

	"cleanly/internal/core/application/usecases/queries"
	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// Request bodies.

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createOrderRequest struct {
	UserID         string `json:"userId"`
	Service        string `json:"service"`
	PickupOption   string `json:"pickupOption"`
	DeliveryOption string `json:"deliveryOption"`
}

type rateOrderRequest struct {
	Rating int `json:"rating"`
}

type complaintRequest struct {
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type confirmPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

type nextStatusRequest struct {
	Status string `json:"status"`
}

type updatePriceRequest struct {
	Weight decimal.Decimal `json:"weight"`
}

// Response resources.

type userResource struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
}

type orderResource struct {
	ID                   string          `json:"orderId"`
	Service              string          `json:"service"`
	PickupOption         string          `json:"pickupOption"`
	DeliveryOption       string          `json:"deliveryOption"`
	Weight               decimal.Decimal `json:"weight"`
	Price                decimal.Decimal `json:"price"`
	Status               string          `json:"status"`
	Rating               int             `json:"rating"`
	PaymentMethod        string          `json:"paymentMethod,omitempty"`
	PaymentStatus        string          `json:"paymentStatus"`
	ComplaintDescription string          `json:"complaintDescription,omitempty"`
	ComplaintImageURL    string          `json:"complaintImageUrl,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

type orderWithUserResource struct {
	orderResource
	UserID       string `json:"userId"`
	UserFullName string `json:"userFullName"`
	UserPhone    string `json:"userPhone,omitempty"`
	UserAddress  string `json:"userAddress,omitempty"`
}

type notificationResource struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type monthlyRevenueResource struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type revenueResource struct {
	Filter string                   `json:"filter"`
	Total  decimal.Decimal          `json:"total"`
	Months []monthlyRevenueResource `json:"months,omitempty"`
}

// Mapping from domain aggregates and read models.

func userResourceFromDomain(aggregate *user.User) userResource {
	return userResource{
		ID:       aggregate.ID().String(),
		FullName: aggregate.FullName(),
		Email:    aggregate.Email(),
		Phone:    aggregate.Phone(),
		Address:  aggregate.Address(),
		Role:     aggregate.Role(),
	}
}

func userResourceFromLogin(profile queries.LoginQueryResponse) userResource {
	return userResource{
		ID:       profile.ID.String(),
		FullName: profile.FullName,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Address:  profile.Address,
		Role:     profile.Role,
	}
}

func orderResourceFromDomain(aggregate *order.Order) orderResource {
	return orderResource{
		ID:                   aggregate.ID().String(),
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

func orderResourceFromView(view queries.OrderView) orderResource {
	return orderResource{
		ID:                   view.ID,
		Service:              view.Service,
		PickupOption:         view.PickupOption,
		DeliveryOption:       view.DeliveryOption,
		Weight:               view.Weight,
		Price:                view.Price,
		Status:               view.Status,
		Rating:               view.Rating,
		PaymentMethod:        view.PaymentMethod,
		PaymentStatus:        view.PaymentStatus,
		ComplaintDescription: view.ComplaintDescription,
		ComplaintImageURL:    view.ComplaintImageURL,
		CreatedAt:            view.CreatedAt,
		UpdatedAt:            view.UpdatedAt,
	}
}

func orderResourcesFromViews(views []queries.OrderView) []orderResource {
	resources := make([]orderResource, len(views))
	for i, view := range views {
		resources[i] = orderResourceFromView(view)
	}
	return resources
}

func orderWithUserResourcesFromViews(views []queries.OrderWithUserView) []orderWithUserResource {
	resources := make([]orderWithUserResource, len(views))
	for i, view := range views {
		resources[i] = orderWithUserResource{
			orderResource: orderResourceFromView(view.OrderView),
			UserID:        view.UserID.String(),
			UserFullName:  view.UserFullName,
			UserPhone:     view.UserPhone,
			UserAddress:   view.UserAddress,
		}
	}
	return resources
}

func notificationResourcesFromViews(views []queries.NotificationView) []notificationResource {
	resources := make([]notificationResource, len(views))
	for i, view := range views {
		resources[i] = notificationResource{
			ID:        view.ID.String(),
			OrderID:   view.OrderID,
			Title:     view.Title,
			Message:   view.Message,
			IsRead:    view.IsRead,
			CreatedAt: view.CreatedAt,
		}
	}
	return resources
}

func revenueResourceFromResponse(response queries.GetRevenueQueryResponse) revenueResource {
	resource := revenueResource{
		Filter: response.Filter,
		Total:  response.Total,
	}
	for _, month := range response.Months {
		resource.Months = append(resource.Months, monthlyRevenueResource{
			Month: int(month.Month),
			Total: month.Total,
		})
	}
	return resource
}
