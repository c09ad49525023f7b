package repository

import (
	"context"
	"errors"

	"sheshape/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines read and guarded inventory operations for the
// catalog. All inventory mutation goes through AdjustInventory so a bare
// read-modify-write never happens outside a lock scope.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs fetches a batch of products in one query. Missing ids are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindByIDsForUpdate fetches the products while taking row-level locks,
	// pinning their inventory counts for the rest of the transaction. Only
	// meaningful on a repository bound to a transaction.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ListActive returns active products ordered by creation time, newest
	// first, with the total count for pagination.
	ListActive(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)

	// AdjustInventory adds delta (negative to decrement) to the product's
	// inventory count. The update is conditional: a decrement that would push
	// the count below zero affects no rows and returns ErrInsufficientInventory.
	AdjustInventory(ctx context.Context, id uuid.UUID, delta int) error
}

// ErrInsufficientInventory is returned by AdjustInventory when a decrement
// would drive the inventory count negative.
var ErrInsufficientInventory = errors.New("insufficient inventory")
