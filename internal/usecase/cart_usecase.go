// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartUsecase defines the interface for cart-related business operations.
type CartUsecase interface {
	// GetCart returns the user's cart with live product data and derived
	// totals. A user without a cart gets an empty view, not an error.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddItem puts a product into the cart, creating the cart lazily. Adding
	// a product already in the cart increases its quantity.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*CartView, error)

	// UpdateItemQuantity sets the quantity of an existing line. Zero removes
	// the line.
	UpdateItemQuantity(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem deletes the line for the product.
	RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*CartView, error)

	// ClearCart deletes every line from the user's cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error

	// ValidateCart checks every line against the live catalog and reports
	// per-item issues instead of a bare boolean.
	ValidateCart(ctx context.Context, userID uuid.UUID) (*CartValidationResult, error)
}

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// --- Output DTOs ---

// CartItemView is a cart line joined with live product data. Unit price is
// read from the product at view time; it is not a price lock.
type CartItemView struct {
	ID                 uuid.UUID        `json:"id"`
	ProductID          uuid.UUID        `json:"product_id"`
	ProductName        string           `json:"product_name"`
	ProductDescription string           `json:"product_description,omitempty"`
	ProductCategory    string           `json:"product_category,omitempty"`
	ProductImageURL    string           `json:"product_image_url,omitempty"`
	Price              decimal.Decimal  `json:"price"`
	DiscountPrice      *decimal.Decimal `json:"discount_price,omitempty"`
	UnitPrice          decimal.Decimal  `json:"unit_price"`
	Quantity           int              `json:"quantity"`
	TotalPrice         decimal.Decimal  `json:"total_price"`
	AvailableStock     int              `json:"available_stock"`
	Available          bool             `json:"available"`
	AddedAt            time.Time        `json:"added_at"`
}

// CartView is the user-facing cart representation. Totals are recomputed from
// the items on every read.
type CartView struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Items       []*CartItemView `json:"items"`
	TotalItems  int             `json:"total_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CartIssue describes why a single cart line cannot be checked out.
type CartIssue struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Reason      string    `json:"reason"`
}

// CartValidationResult is the structured outcome of cart validation.
type CartValidationResult struct {
	Valid  bool        `json:"valid"`
	Issues []CartIssue `json:"issues"`
}
