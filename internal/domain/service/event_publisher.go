package service

import (
	"context"
)

// Order event types published on the message queue.
const (
	OrderEventCreated   = "order.created"
	OrderEventCancelled = "order.cancelled"
)

// OrderEvent represents an order lifecycle event for downstream consumers
// (fulfillment, analytics). Amounts travel as strings to keep the wire format
// independent of the decimal library.
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id"`
	TotalAmount string `json:"total_amount"`
	ItemCount   int    `json:"item_count"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
