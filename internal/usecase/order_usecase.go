package usecase

import (
	"context"

	"sheshape/internal/domain/entity"
	"sheshape/internal/domain/service"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for the checkout and order pipeline.
type OrderUsecase interface {
	// Checkout converts the user's cart into an order: validates the cart,
	// snapshots the items, computes totals, decrements inventory under row
	// locks, optionally charges payment, clears the cart and returns the
	// persisted order.
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*entity.Order, error)

	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID, page, size int) (*OrderPage, error)
	GetUserRecentOrders(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error)
	GetOrdersByStatus(ctx context.Context, status entity.OrderStatus, page, size int) (*OrderPage, error)

	// GetAllOrders lists every order regardless of owner, for back-office use.
	GetAllOrders(ctx context.Context, page, size int) (*OrderPage, error)

	// UpdateOrderStatus applies a guarded transition of the fulfillment
	// status, stamping ShippedAt / DeliveredAt and recording the tracking
	// number as appropriate.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// UpdatePaymentStatus records the payment outcome and synchronizes the
	// fulfillment status (paid => confirmed, failed => cancelled).
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) (*entity.Order, error)

	// CancelOrder restores the ordered quantities to inventory and marks the
	// order cancelled. Shipped and delivered orders are rejected.
	CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) (*entity.Order, error)

	// TrackingQR renders a PNG QR code for the order's tracking label.
	TrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// AddressInput is the structured postal address accepted at checkout.
type AddressInput struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country" validate:"required,len=2"`
}

// ToEntity converts the input to the domain address form.
func (a *AddressInput) ToEntity() entity.Address {
	return entity.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}.Normalize()
}

// CheckoutInput defines the data required to convert a cart into an order.
// BillingAddress defaults to the shipping address; PaymentDetails is optional
// and, when absent, leaves the order awaiting payment.
type CheckoutInput struct {
	PaymentMethod  entity.PaymentMethod    `json:"payment_method" validate:"required"`
	ShippingAddr   AddressInput            `json:"shipping_address" validate:"required"`
	BillingAddr    *AddressInput           `json:"billing_address,omitempty"`
	CustomerNotes  string                  `json:"customer_notes,omitempty"`
	PaymentDetails *service.PaymentDetails `json:"payment_details,omitempty"`
}

// UpdateOrderStatusInput carries the requested fulfillment status, plus an
// optional tracking number recorded when the order ships.
type UpdateOrderStatusInput struct {
	Status         entity.OrderStatus `json:"status" validate:"required"`
	TrackingNumber string             `json:"tracking_number,omitempty"`
}

// CancelOrderInput carries the customer-supplied cancellation reason.
type CancelOrderInput struct {
	Reason string `json:"reason" validate:"required"`
}

// --- Output DTOs ---

// OrderPage is one page of an order listing.
type OrderPage struct {
	Orders []*entity.Order `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Size   int             `json:"size"`
}
