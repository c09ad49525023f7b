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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	cartRepo  *mockRepo.MockCartRepository
	prodRepo  *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	prodRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCartService(txManager, logger)

	// Every Execute call runs its body against the shared mock factory and
	// propagates the body's error, mirroring the real transaction manager.
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return cartServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		cartRepo:  cartRepo,
		prodRepo:  prodRepo,
	}
}

func testProduct(name string, price int64, stock int) *entity.Product {
	return &entity.Product{
		ID:             uuid.New(),
		Name:           name,
		Price:          decimal.NewFromInt(price),
		Categories:     []string{"supplements"},
		InventoryCount: stock,
		Active:         true,
	}
}

func TestCartService_GetCart_NoCartReturnsEmptyView(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	view, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.TotalAmount.IsZero())
	assert.Equal(t, userID, view.UserID)
}

func TestCartService_GetCart_DerivesTotalsFromLiveProducts(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	discounted := testProduct("Protein Powder", 50, 10)
	discount := decimal.NewFromInt(40)
	discounted.DiscountPrice = &discount
	regular := testProduct("Yoga Mat", 30, 5)

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: discounted.ID, Quantity: 2},
			{ID: uuid.New(), ProductID: regular.ID, Quantity: 1},
		},
	}

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.prodRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{discounted, regular}, nil)

	view, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.TotalItems)
	// 2 x 40 (discounted) + 1 x 30
	assert.True(t, view.TotalAmount.Equal(decimal.NewFromInt(110)), "got %s", view.TotalAmount)
	assert.True(t, view.Items[0].UnitPrice.Equal(discount))
}

func TestCartService_AddItem_CreatesCartLazily(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Resistance Bands", 15, 20)

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.prodRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	fx.cartRepo.EXPECT().SaveItem(ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil)
	fx.prodRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{product}, nil)

	view, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 2})

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.True(t, view.TotalAmount.Equal(decimal.NewFromInt(30)))
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Shaker Bottle", 10, 10)

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Quantity: 3},
		},
	}

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.prodRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().SaveItem(ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil)
	fx.prodRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{product}, nil)

	view, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 2})

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestCartService_AddItem_InsufficientInventory(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Kettlebell", 45, 1)

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.prodRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	_, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 2})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientInventory))
}

func TestCartService_AddItem_InactiveProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Discontinued Tea", 12, 10)
	product.Active = false

	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.prodRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 1})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductUnavailable))
}

func TestCartService_UpdateItemQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: productID, Quantity: 2},
		},
	}

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, cart.ID, productID).Return(nil)

	view, err := fx.service.UpdateItemQuantity(ctx, userID, productID, 0)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartService_UpdateItemQuantity_NegativeRejected(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.UpdateItemQuantity(context.Background(), uuid.New(), uuid.New(), -1)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)

	_, err := fx.service.RemoveItem(ctx, userID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_ClearCart_MissingCartIsNoop(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	err := fx.service.ClearCart(ctx, userID)

	require.NoError(t, err)
}

func TestCartService_ValidateCart_ReportsPerItemIssues(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	inactive := testProduct("Retired Bar", 20, 10)
	inactive.Active = false
	short := testProduct("Dumbbell Set", 80, 1)
	missingID := uuid.New()

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: inactive.ID, Quantity: 1},
			{ID: uuid.New(), ProductID: short.ID, Quantity: 3},
			{ID: uuid.New(), ProductID: missingID, Quantity: 1},
		},
	}

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.prodRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{inactive, short}, nil)

	result, err := fx.service.ValidateCart(ctx, userID)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Len(t, result.Issues, 3)
}

func TestCartService_ValidateCart_ValidCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Foam Roller", 25, 10)

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Quantity: 2},
		},
	}

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.prodRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{product}, nil)

	result, err := fx.service.ValidateCart(ctx, userID)

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestCartService_ValidateCart_MissingCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	result, err := fx.service.ValidateCart(ctx, userID)

	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "cart is empty", result.Issues[0].Reason)
}
