package repository

import (
	"context"
	"errors"

	"sheshape/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// ErrCartItemNotFound is returned when the cart has no line for a product.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists carts and their line items.
type CartRepository interface {
	// FindByUserID retrieves the user's cart together with its items.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new empty cart for the user.
	Create(ctx context.Context, cart *entity.Cart) error

	// SaveItem inserts or updates a single cart line.
	SaveItem(ctx context.Context, item *entity.CartItem) error

	// DeleteItem removes the line for the product from the cart.
	DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error

	// DeleteItems removes every line from the cart.
	DeleteItems(ctx context.Context, cartID uuid.UUID) error
}
