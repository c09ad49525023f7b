package handler

import (
	"log/slog"
	"net/http"

	"sheshape/internal/delivery/http/middleware"
	"sheshape/internal/delivery/http/response"
	"sheshape/internal/domain/entity"
	"sheshape/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for checkout and order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdatePaymentStatusRequest represents the request body for recording a payment outcome
type UpdatePaymentStatusRequest struct {
	PaymentStatus entity.PaymentStatus `json:"payment_status" validate:"required"`
}

// Checkout handles converting the user's cart into an order
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CheckoutInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// GetOrder handles retrieving a single order by ID
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// GetOrderByNumber handles retrieving a single order by its order number
func (h *OrderHandler) GetOrderByNumber(c echo.Context) error {
	orderNumber := c.Param("orderNumber")
	if orderNumber == "" {
		return response.BadRequest(c, "INVALID_ID", "Order number is required")
	}

	order, err := h.orderUC.GetOrderByNumber(c.Request().Context(), orderNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// GetMyOrders handles listing the current user's orders with pagination
func (h *OrderHandler) GetMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", 10)

	orders, err := h.orderUC.GetUserOrders(c.Request().Context(), userID, page, size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetMyRecentOrders handles listing the current user's most recent orders
func (h *OrderHandler) GetMyRecentOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := queryInt(c, "limit", 5)

	orders, err := h.orderUC.GetUserRecentOrders(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Recent orders retrieved successfully")
}

// GetAllOrders handles the back-office listing of every order
func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", 10)

	orders, err := h.orderUC.GetAllOrders(c.Request().Context(), page, size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// CancelOrder handles cancelling an order and restoring its inventory
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req usecase.CancelOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), orderID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// UpdateOrderStatus handles applying a guarded fulfillment status transition
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req usecase.UpdateOrderStatusInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// UpdatePaymentStatus handles recording a payment outcome for an order
func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdatePaymentStatus(c.Request().Context(), orderID, req.PaymentStatus)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Payment status updated successfully")
}

// TrackingQR handles rendering the order's tracking label as a QR code
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	qrCode, err := h.orderUC.TrackingQR(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Type", "image/png")
	c.Response().Header().Set("Content-Disposition", "inline; filename=order-tracking-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
