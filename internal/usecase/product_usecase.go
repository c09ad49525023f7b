package usecase

import (
	"context"

	"sheshape/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines read operations over the catalog. Inventory
// mutation happens exclusively inside order transactions.
type ProductUsecase interface {
	ListProducts(ctx context.Context, page, size int) (*ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Size     int               `json:"size"`
}
