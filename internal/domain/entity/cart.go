package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a user's pending collection of product selections prior to order
// creation. Each user owns at most one cart; totals are always derived from
// the items and live product prices, never stored.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem references a product and a desired quantity. The unit price is
// read live from the product at view time; no price lock is taken.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	AddedAt   time.Time
	UpdatedAt time.Time
}

// ItemFor returns the cart line referencing the product, or nil.
func (c *Cart) ItemFor(productID uuid.UUID) *CartItem {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item
		}
	}

	return nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
