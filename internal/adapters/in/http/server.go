// Package http exposes the application's use cases over an echo HTTP server.
// Handlers bind JSON contracts, construct commands and queries, and translate
// the error taxonomy into status codes; no business logic lives here.
package http

import (
	"net/http"

	"cleanly/internal/core/application/usecases/commands"
	"cleanly/internal/core/application/usecases/queries"
	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler          commands.RegisterUserCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	advanceOrderStatusHandler    commands.AdvanceOrderStatusCommandHandler
	recordWeighingHandler        commands.RecordWeighingCommandHandler
	confirmPaymentHandler        commands.ConfirmPaymentCommandHandler
	rateOrderHandler             commands.RateOrderCommandHandler
	fileComplaintHandler         commands.FileComplaintCommandHandler
	deleteNotificationHandler    commands.DeleteNotificationCommandHandler
	markNotificationsReadHandler commands.MarkNotificationsReadCommandHandler

	// Query handlers
	loginHandler            queries.LoginQueryHandler
	getUserOrdersHandler    queries.GetUserOrdersQueryHandler
	getOrdersByStageHandler queries.GetOrdersByStageQueryHandler
	getComplaintsHandler    queries.GetComplaintsQueryHandler
	getRevenueHandler       queries.GetRevenueQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	recordWeighingHandler commands.RecordWeighingCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	fileComplaintHandler commands.FileComplaintCommandHandler,
	deleteNotificationHandler commands.DeleteNotificationCommandHandler,
	markNotificationsReadHandler commands.MarkNotificationsReadCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getOrdersByStageHandler queries.GetOrdersByStageQueryHandler,
	getComplaintsHandler queries.GetComplaintsQueryHandler,
	getRevenueHandler queries.GetRevenueQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:          registerUserHandler,
		createOrderHandler:           createOrderHandler,
		advanceOrderStatusHandler:    advanceOrderStatusHandler,
		recordWeighingHandler:        recordWeighingHandler,
		confirmPaymentHandler:        confirmPaymentHandler,
		rateOrderHandler:             rateOrderHandler,
		fileComplaintHandler:         fileComplaintHandler,
		deleteNotificationHandler:    deleteNotificationHandler,
		markNotificationsReadHandler: markNotificationsReadHandler,
		loginHandler:                 loginHandler,
		getUserOrdersHandler:         getUserOrdersHandler,
		getOrdersByStageHandler:      getOrdersByStageHandler,
		getComplaintsHandler:         getComplaintsHandler,
		getRevenueHandler:            getRevenueHandler,
		getNotificationsHandler:      getNotificationsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/register", s.Register)
	e.POST("/login", s.Login)

	e.POST("/order", s.CreateOrder)
	e.GET("/orders/:userId", s.GetUserOrders)
	e.POST("/orders/:orderId/rate", s.RateOrder)
	e.POST("/orders/:orderId/complain", s.FileComplaint)
	e.POST("/orders/:orderId/confirm-payment", s.ConfirmPayment)

	e.GET("/notifications/:userId", s.GetNotifications)
	e.DELETE("/notifications/:id", s.DeleteNotification)
	e.POST("/notifications/mark-read/:userId", s.MarkNotificationsRead)

	e.GET("/admin/incoming-orders", s.GetIncomingOrders)
	e.GET("/admin/ongoing-orders", s.GetOngoingOrders)
	e.GET("/admin/completed-orders", s.GetCompletedOrders)
	e.GET("/admin/complaints", s.GetComplaints)
	e.POST("/admin/orders/:orderId/next-status", s.AdvanceOrderStatus)
	e.PUT("/admin/orders/:orderId/update-price", s.UpdateOrderPrice)
	e.GET("/admin/revenue", s.GetRevenue)
}

// Register handles POST /register - creates a new user account.
func (s *Server) Register(ctx echo.Context) error {
	var request registerRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(
		request.FullName,
		request.Email,
		request.Phone,
		request.Address,
		request.Password,
	)
	if err != nil {
		return respondBadRequest(ctx, "Invalid registration data: "+err.Error())
	}

	registered, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, "Failed to register user", err)
	}

	return respond(ctx, http.StatusCreated, "Registration successful", "user", userResourceFromDomain(registered))
}

// Login handles POST /login - verifies credentials and returns the profile.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewLoginQuery(request.Email, request.Password)
	if err != nil {
		return respondBadRequest(ctx, "Invalid login data: "+err.Error())
	}

	profile, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, "Login failed", err)
	}

	return respond(ctx, http.StatusOK, "Login successful", "user", userResourceFromLogin(profile))
}

// CreateOrder handles POST /order - places a new laundry order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		userID,
		order.ServiceType(request.Service),
		order.PickupOption(request.PickupOption),
		order.DeliveryOption(request.DeliveryOption),
	)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, "Failed to place order", err)
	}

	return respond(ctx, http.StatusCreated, "Order placed", "order", orderResourceFromDomain(placed))
}

// GetUserOrders handles GET /orders/:userId - one customer's history.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	views, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, "Failed to retrieve orders", err)
	}

	return respond(ctx, http.StatusOK, "Orders retrieved", "orders", orderResourcesFromViews(views))
}

// RateOrder handles POST /orders/:orderId/rate - rates an order 1 to 5.
func (s *Server) RateOrder(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request rateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateOrderCommand(orderID, request.Rating)
	if err != nil {
		return respondBadRequest(ctx, "Invalid rating: "+err.Error())
	}

	rated, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, "Failed to rate order", err)
	}

	return respond(ctx, http.StatusOK, "Order rated", "order", orderResourceFromDomain(rated))
}

// FileComplaint handles POST /orders/:orderId/complain - write-once complaint.
func (s *Server) FileComplaint(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request complaintRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFileComplaintCommand(orderID, request.Description, request.ImageURL)
	if err != nil {
		return respondBadRequest(ctx, "Invalid complaint data: "+err.Error())
	}

	complained, err := s.fileComplaintHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, "Failed to file complaint", err)
	}

	return respond(ctx, http.StatusOK, "Complaint filed", "order", orderResourceFromDomain(complained))
}

// ConfirmPayment handles POST /orders/:orderId/confirm-payment - COD only.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request confirmPaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, request.PaymentMethod)
	if err != nil {
		return respondBadRequest(ctx, "Invalid payment data: "+err.Error())
	}

	confirmed, err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, "Failed to confirm payment", err)
	}

	return respond(ctx, http.StatusOK, "Payment confirmed", "order", orderResourceFromDomain(confirmed))
}

// GetNotifications handles GET /notifications/:userId - newest first.
func (s *Server) GetNotifications(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetNotificationsQuery(userID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	views, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, "Failed to retrieve notifications", err)
	}

	return respond(ctx, http.StatusOK, "Notifications retrieved", "notifications",
		notificationResourcesFromViews(views))
}

// DeleteNotification handles DELETE /notifications/:id.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid notification id: "+err.Error())
	}

	cmd, err := commands.NewDeleteNotificationCommand(notificationID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid notification id: "+err.Error())
	}

	if err = s.deleteNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, "Failed to delete notification", err)
	}

	return respond(ctx, http.StatusOK, "Notification deleted", "", nil)
}

// MarkNotificationsRead handles POST /notifications/mark-read/:userId.
func (s *Server) MarkNotificationsRead(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationsReadCommand(userID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	if err = s.markNotificationsReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, "Failed to mark notifications read", err)
	}

	return respond(ctx, http.StatusOK, "Notifications marked read", "", nil)
}

// GetIncomingOrders handles GET /admin/incoming-orders.
func (s *Server) GetIncomingOrders(ctx echo.Context) error {
	return s.getOrdersForStage(ctx, queries.StageIncoming)
}

// GetOngoingOrders handles GET /admin/ongoing-orders.
func (s *Server) GetOngoingOrders(ctx echo.Context) error {
	return s.getOrdersForStage(ctx, queries.StageOngoing)
}

// GetCompletedOrders handles GET /admin/completed-orders.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	return s.getOrdersForStage(ctx, queries.StageCompleted)
}

func (s *Server) getOrdersForStage(ctx echo.Context, stage string) error {
	query, err := queries.NewGetOrdersByStageQuery(stage)
	if err != nil {
		return respondBadRequest(ctx, "Invalid stage: "+err.Error())
	}

	views, err := s.getOrdersByStageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, "Failed to retrieve orders", err)
	}

	return respond(ctx, http.StatusOK, "Orders retrieved", "orders", orderWithUserResourcesFromViews(views))
}

// GetComplaints handles GET /admin/complaints.
func (s *Server) GetComplaints(ctx echo.Context) error {
	views, err := s.getComplaintsHandler.Handle(ctx.Request().Context(), queries.NewGetComplaintsQuery())
	if err != nil {
		return respondError(ctx, "Failed to retrieve complaints", err)
	}

	return respond(ctx, http.StatusOK, "Complaints retrieved", "complaints",
		orderWithUserResourcesFromViews(views))
}

// AdvanceOrderStatus handles POST /admin/orders/:orderId/next-status.
// The target status arrives as its display label and is parsed into the
// closed enum before the command is built.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request nextStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondBadRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target)
	if err != nil {
		return respondBadRequest(ctx, "Invalid status data: "+err.Error())
	}

	advanced, err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, "Failed to advance order status", err)
	}

	return respond(ctx, http.StatusOK, "Order status updated", "order", orderResourceFromDomain(advanced))
}

// UpdateOrderPrice handles PUT /admin/orders/:orderId/update-price.
// Records the weighing and derives the bill from the current price list.
func (s *Server) UpdateOrderPrice(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request updatePriceRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordWeighingCommand(orderID, request.Weight)
	if err != nil {
		return respondBadRequest(ctx, "Invalid weight: "+err.Error())
	}

	weighed, err := s.recordWeighingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, "Failed to update order price", err)
	}

	return respond(ctx, http.StatusOK, "Order price updated", "order", orderResourceFromDomain(weighed))
}

// GetRevenue handles GET /admin/revenue?filter= - revenue aggregation.
func (s *Server) GetRevenue(ctx echo.Context) error {
	query, err := queries.NewGetRevenueQuery(ctx.QueryParam("filter"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid filter: "+err.Error())
	}

	response, err := s.getRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, "Failed to compute revenue", err)
	}

	return respond(ctx, http.StatusOK, "Revenue computed", "revenue", revenueResourceFromResponse(response))
}
