package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusProcessing     OrderStatus = "PROCESSING"
	OrderStatusShipped        OrderStatus = "SHIPPED"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusReturned       OrderStatus = "RETURNED"
)

// PaymentStatus is the payment state of an order, tracked independently of
// the fulfillment status.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod identifies how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodWallet       PaymentMethod = "WALLET"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// orderTransitions is the guarded transition table for the fulfillment state.
// The happy path moves strictly forward; CANCELLED is reachable from every
// state up to OUT_FOR_DELIVERY, and RETURNED only from DELIVERED.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing:     {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:        {OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:      {OrderStatusReturned},
	OrderStatusCancelled:      {},
	OrderStatusReturned:       {},
}

// CanTransitionTo reports whether the guarded transition table allows moving
// from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodWallet, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

// Order is created once per successful checkout. The order number and the
// item snapshots are immutable; only status, payment status, tracking data
// and notes mutate afterwards.
type Order struct {
	ID            uuid.UUID
	OrderNumber   string
	UserID        uuid.UUID
	Items         []*OrderItem
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod

	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	ShippingAddress Address
	BillingAddress  Address

	CustomerNotes         string
	TrackingNumber        string
	EstimatedDeliveryDate *time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a point-in-time snapshot of a product at checkout. Later
// catalog edits never alter historical orders.
type OrderItem struct {
	ID                 uuid.UUID
	OrderID            uuid.UUID
	ProductID          uuid.UUID
	ProductName        string
	ProductDescription string
	ProductCategory    string
	ProductImageURL    string
	Quantity           int
	Price              decimal.Decimal
	DiscountPrice      *decimal.Decimal
	UnitPrice          decimal.Decimal
	TotalPrice         decimal.Decimal
}

// Cancellable reports whether self-service cancellation is allowed. Shipped
// orders need support intervention; delivered orders cannot be cancelled.
func (o *Order) Cancellable() bool {
	return o.Status != OrderStatusDelivered && o.Status != OrderStatusShipped
}
