package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sheshape/internal/domain/entity"
	domainerrors "sheshape/internal/domain/errors"
	"sheshape/internal/domain/repository"
	mockRepo "sheshape/internal/mocks/repository"
	"sheshape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service  usecase.ProductUsecase
	factory  *mockRepo.MockRepositoryFactory
	prodRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	prodRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewProductService(txManager, logger)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return productServiceFixtures{
		service:  svc,
		factory:  factory,
		prodRepo: prodRepo,
	}
}

func TestProductService_ListProducts_NormalizesPaging(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	products := []*entity.Product{testProduct("Protein Powder", 50, 10)}

	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	// page 0 / size 0 fall back to page 1 with the default size
	fx.prodRepo.EXPECT().ListActive(ctx, 0, 20).Return(products, int64(1), nil)

	page, err := fx.service.ListProducts(ctx, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Size)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Products, 1)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.prodRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
