// Package http exposes the delivery management API over echo. Handlers
// translate wire requests into commands and queries; authorization decisions
// come from the policy table in policy.go.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/adapters/in/http/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	RegisterUser        commands.RegisterUserCommandHandler
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrder         commands.UpdateOrderCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	AssignOrder         commands.AssignOrderCommandHandler
	UnassignOrder       commands.UnassignOrderCommandHandler
	UpdateOrderStatus   commands.UpdateOrderStatusCommandHandler
	CreatePartner       commands.CreatePartnerCommandHandler
	UpdatePartner       commands.UpdatePartnerCommandHandler
	UpdatePartnerStatus commands.UpdatePartnerStatusCommandHandler
	DeletePartner       commands.DeletePartnerCommandHandler

	LoginUser        queries.LoginUserQueryHandler
	GetUser          queries.GetUserQueryHandler
	GetOrders        queries.GetOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetPartnerOrders queries.GetPartnerOrdersQueryHandler
	GetPartners      queries.GetPartnersQueryHandler
	GetPartner       queries.GetPartnerQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all API routes. Everything except registration and
// login sits behind the bearer-token middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.registerUser)
	api.POST("/auth/login", s.loginUser)

	protected := api.Group("", authMiddleware)

	protected.GET("/auth/me", s.me)

	protected.POST("/orders", s.createOrder)
	protected.GET("/orders", s.listOrders)
	protected.GET("/orders/:orderId", s.getOrder)
	protected.PUT("/orders/:orderId", s.updateOrder)
	protected.DELETE("/orders/:orderId", s.deleteOrder)
	protected.POST("/orders/:orderId/assign", s.assignOrder)
	protected.POST("/orders/:orderId/unassign", s.unassignOrder)
	protected.PATCH("/orders/:orderId/status", s.updateOrderStatus)
	protected.GET("/orders/partner/:partnerId", s.listPartnerOrders)

	protected.POST("/partners", s.createPartner)
	protected.GET("/partners", s.listPartners)
	protected.GET("/partners/:partnerId", s.getPartner)
	protected.PUT("/partners/:partnerId", s.updatePartner)
	protected.PATCH("/partners/:partnerId/status", s.updatePartnerStatus)
	protected.DELETE("/partners/:partnerId", s.deletePartner)
}

func (s *Server) registerUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	var partnerID *kernel.UUID
	if req.PartnerID != nil {
		id, err := kernel.UUIDFromString(*req.PartnerID)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("partnerId", err)
		}
		partnerID = &id
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID, req.Name, req.Email, req.Password, user.Role(req.Role), partnerID)
	if err != nil {
		return err
	}

	if err = s.handlers.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, envelope{Success: true, Data: userResponse{
		ID:        userID.String(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		PartnerID: req.PartnerID,
	}})
}

func (s *Server) loginUser(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	query, err := queries.NewLoginUserQuery(req.Email, req.Password)
	if err != nil {
		return err
	}

	resp, err := s.handlers.LoginUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: loginResponse{
		Token: resp.Token,
		User: userResponse{
			ID:        resp.UserID.String(),
			Name:      resp.Name,
			Email:     resp.Email,
			Role:      string(resp.Role),
			PartnerID: uuidPtrString(resp.PartnerID),
		},
	}})
}

// me returns the account behind the presented token. The identity is
// self-scoped, so no policy check is involved.
func (s *Server) me(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(identity.UserID)
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: userResponse{
		ID:        resp.UserID.String(),
		Name:      resp.Name,
		Email:     resp.Email,
		Role:      string(resp.Role),
		PartnerID: uuidPtrString(resp.PartnerID),
	}})
}

func (s *Server) createOrder(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpCreateOrder, nil); err != nil {
		return err
	}

	details, err := bindOrderDetails(c)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, details)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusCreated, orderID)
}

func (s *Server) listOrders(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpListOrders, nil); err != nil {
		return err
	}

	var statusFilter *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return parseErr
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(statusFilter)
	if err != nil {
		return err
	}

	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: toOrderResponses(orders)})
}

func (s *Server) getOrder(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	resp, err := s.fetchOrder(c, orderID)
	if err != nil {
		return err
	}

	if err = Authorize(identity, OpGetOrder, resp.PartnerID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: toOrderResponse(resp)})
}

func (s *Server) updateOrder(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpUpdateOrder, nil); err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	details, err := bindOrderDetails(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, details)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

func (s *Server) deleteOrder(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpDeleteOrder, nil); err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) assignOrder(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpAssignOrder, nil); err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	// The body is optional; without a partnerId the nearest available
	// partner is selected automatically.
	var req assignOrderRequest
	if c.Request().ContentLength > 0 {
		if err = c.Bind(&req); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("request body", err)
		}
	}

	var partnerID *kernel.UUID
	if req.PartnerID != nil {
		id, parseErr := kernel.UUIDFromString(*req.PartnerID)
		if parseErr != nil {
			return errs.NewValueIsInvalidErrorWithCause("partnerId", parseErr)
		}
		partnerID = &id
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, partnerID)
	if err != nil {
		return err
	}

	assignedPartnerID, err := s.handlers.AssignOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.respondWithAssignment(c, http.StatusOK, orderID, assignedPartnerID)
}

func (s *Server) unassignOrder(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpUnassignOrder, nil); err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUnassignOrderCommand(orderID)
	if err != nil {
		return err
	}

	releasedPartnerID, err := s.handlers.UnassignOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.respondWithAssignment(c, http.StatusOK, orderID, releasedPartnerID)
}

func (s *Server) updateOrderStatus(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	// Ownership is decided by the order's current assignment, so the order
	// is read before the policy check.
	current, err := s.fetchOrder(c, orderID)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpUpdateOrderStatus, current.PartnerID); err != nil {
		return err
	}

	var req orderStatusRequest
	if err = c.Bind(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

func (s *Server) listPartnerOrders(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}

	partnerID, err := pathUUID(c, "partnerId")
	if err != nil {
		return err
	}

	if err = Authorize(identity, OpListPartnerOrders, &partnerID); err != nil {
		return err
	}

	query, err := queries.NewGetPartnerOrdersQuery(partnerID)
	if err != nil {
		return err
	}

	orders, err := s.handlers.GetPartnerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: toOrderResponses(orders)})
}

func (s *Server) createPartner(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpCreatePartner, nil); err != nil {
		return err
	}

	var req partnerRequest
	if err = c.Bind(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(partnerID, req.Name, req.Email, req.Phone, req.Location)
	if err != nil {
		return err
	}

	if err = s.handlers.CreatePartner.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithPartner(c, http.StatusCreated, partnerID)
}

func (s *Server) listPartners(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpListPartners, nil); err != nil {
		return err
	}

	var statusFilter *partner.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, parseErr := partner.StatusFromString(raw)
		if parseErr != nil {
			return parseErr
		}
		statusFilter = &status
	}

	query, err := queries.NewGetPartnersQuery(statusFilter)
	if err != nil {
		return err
	}

	partners, err := s.handlers.GetPartners.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: toPartnerResponses(partners)})
}

func (s *Server) getPartner(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}

	partnerID, err := pathUUID(c, "partnerId")
	if err != nil {
		return err
	}

	if err = Authorize(identity, OpGetPartner, &partnerID); err != nil {
		return err
	}

	return s.respondWithPartner(c, http.StatusOK, partnerID)
}

func (s *Server) updatePartner(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpUpdatePartner, nil); err != nil {
		return err
	}

	partnerID, err := pathUUID(c, "partnerId")
	if err != nil {
		return err
	}

	var req partnerContactRequest
	if err = c.Bind(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	cmd, err := commands.NewUpdatePartnerCommand(partnerID, req.Name, req.Email, req.Phone)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdatePartner.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithPartner(c, http.StatusOK, partnerID)
}

func (s *Server) updatePartnerStatus(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}

	partnerID, err := pathUUID(c, "partnerId")
	if err != nil {
		return err
	}

	if err = Authorize(identity, OpUpdatePartnerStatus, &partnerID); err != nil {
		return err
	}

	var req partnerStatusRequest
	if err = c.Bind(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	status, err := partner.StatusFromString(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePartnerStatusCommand(partnerID, status, req.Location)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdatePartnerStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithPartner(c, http.StatusOK, partnerID)
}

func (s *Server) deletePartner(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return err
	}
	if err = Authorize(identity, OpDeletePartner, nil); err != nil {
		return err
	}

	partnerID, err := pathUUID(c, "partnerId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePartnerCommand(partnerID)
	if err != nil {
		return err
	}

	if err = s.handlers.DeletePartner.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) fetchOrder(c echo.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.handlers.GetOrder.Handle(c.Request().Context(), query)
}

// respondWithOrder re-reads the order so mutation responses carry the full,
// committed state including timestamps.
func (s *Server) respondWithOrder(c echo.Context, code int, orderID kernel.UUID) error {
	resp, err := s.fetchOrder(c, orderID)
	if err != nil {
		return err
	}
	return c.JSON(code, envelope{Success: true, Data: toOrderResponse(resp)})
}

func (s *Server) respondWithPartner(c echo.Context, code int, partnerID kernel.UUID) error {
	query, err := queries.NewGetPartnerQuery(partnerID)
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetPartner.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(code, envelope{Success: true, Data: toPartnerResponse(resp)})
}

// respondWithAssignment re-reads both sides of the order↔partner link so the
// response carries the committed state of each. The partner side goes null
// when the record disappeared before the read.
func (s *Server) respondWithAssignment(
	c echo.Context,
	code int,
	orderID kernel.UUID,
	partnerID kernel.UUID,
) error {
	orderResp, err := s.fetchOrder(c, orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPartnerQuery(partnerID)
	if err != nil {
		return err
	}

	var linkedPartner *partnerResponse
	partnerResp, err := s.handlers.GetPartner.Handle(c.Request().Context(), query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return err
	default:
		resp := toPartnerResponse(partnerResp)
		linkedPartner = &resp
	}

	return c.JSON(code, envelope{Success: true, Data: assignmentResponse{
		Order:   toOrderResponse(orderResp),
		Partner: linkedPartner,
	}})
}

func bindOrderDetails(c echo.Context) (order.Details, error) {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return order.Details{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	return order.Details{
		Customer:        req.Customer,
		CustomerPhone:   req.CustomerPhone,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		PickupPoint:     req.PickupLocation,
		DeliveryPoint:   req.DeliveryLocation,
		Items:           req.Items,
	}, nil
}

func pathUUID(c echo.Context, param string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(param))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}
