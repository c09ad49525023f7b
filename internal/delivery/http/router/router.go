// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sheshape/internal/delivery/http/middleware"
	"sheshape/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Catalog routes are public
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
	}

	// Profile routes require authentication
	profileGroup := api.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.POST("/setup", r.profileHandler.SetupProfile)
		profileGroup.PUT("/update", r.profileHandler.UpdateProfile)
		profileGroup.POST("/picture", r.profileHandler.UploadProfilePicture)
		profileGroup.DELETE("/picture", r.profileHandler.DeleteProfilePicture)
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.GET("/summary", r.profileHandler.GetProfileSummary)
	}

	// Cart routes require authentication
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.UpdateItemQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("/clear", r.cartHandler.ClearCart)
		cartGroup.GET("/validate", r.cartHandler.ValidateCart)
	}

	// Order routes require authentication
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/checkout", r.orderHandler.Checkout)
		orderGroup.GET("/my-orders", r.orderHandler.GetMyOrders)
		orderGroup.GET("/my-orders/recent", r.orderHandler.GetMyRecentOrders)
		orderGroup.GET("/number/:orderNumber", r.orderHandler.GetOrderByNumber)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id/cancel", r.orderHandler.CancelOrder)
		orderGroup.GET("/:id/qrcode", r.orderHandler.TrackingQR)

		// Back-office listing plus fulfillment and payment transitions are operator-only
		orderGroup.GET("", r.orderHandler.GetAllOrders, r.authMiddleware.RequireRole("ADMIN"))
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus, r.authMiddleware.RequireRole("ADMIN"))
		orderGroup.PUT("/:id/payment-status", r.orderHandler.UpdatePaymentStatus, r.authMiddleware.RequireRole("ADMIN"))
	}
}
