package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item available for purchase.
type Product struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Price          decimal.Decimal
	DiscountPrice  *decimal.Decimal // nil when the product has no active discount
	Categories     []string
	ImageURL       string
	InventoryCount int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveUnitPrice returns the discount price when one is set and positive,
// otherwise the regular price.
func (p *Product) EffectiveUnitPrice() decimal.Decimal {
	if p.DiscountPrice != nil && p.DiscountPrice.IsPositive() {
		return *p.DiscountPrice
	}

	return p.Price
}

// HasInventory reports whether the product can satisfy the requested quantity.
func (p *Product) HasInventory(quantity int) bool {
	return p.InventoryCount >= quantity
}
