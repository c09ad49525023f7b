package impl

import (
	"context"
	"log/slog"

	"sheshape/internal/domain/entity"
	domainerrors "sheshape/internal/domain/errors"
	"sheshape/internal/domain/repository"
	"sheshape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListProducts returns one page of active products, newest first.
func (srv *productService) ListProducts(ctx context.Context, page, size int) (*usecase.ProductPage, error) {
	page, size = normalizePage(page, size)

	var result *usecase.ProductPage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products, total, err := repoFactory.ProductRepo().ListActive(ctx, (page-1)*size, size)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		result = &usecase.ProductPage{Products: products, Total: total, Page: page, Size: size}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return result, nil
}

// GetProduct retrieves a single catalog item.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}
