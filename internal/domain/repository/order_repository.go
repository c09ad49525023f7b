package repository

import (
	"context"
	"errors"

	"sheshape/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when a referenced order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders and their immutable item snapshots.
type OrderRepository interface {
	// Create persists a new order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists mutations of status, payment status, tracking data and
	// notes. Items are never updated.
	Update(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByOrderNumber retrieves an order with its items by its public number.
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// FindByUserID returns the user's orders, newest first, with the total
	// count for pagination.
	FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error)

	// FindByStatus returns orders in the given status, newest first, with the
	// total count for pagination.
	FindByStatus(ctx context.Context, status entity.OrderStatus, offset, limit int) ([]*entity.Order, int64, error)

	// FindAll returns orders across all users and statuses, newest first, with
	// the total count for pagination.
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Order, int64, error)
}
