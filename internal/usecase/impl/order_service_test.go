package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	deliverycontext "sheshape/internal/delivery/context"
	"sheshape/internal/domain/entity"
	domainerrors "sheshape/internal/domain/errors"
	"sheshape/internal/domain/repository"
	"sheshape/internal/domain/service"
	mockRepo "sheshape/internal/mocks/repository"
	mockSvc "sheshape/internal/mocks/service"
	"sheshape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	cartRepo  *mockRepo.MockCartRepository
	prodRepo  *mockRepo.MockProductRepository
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
	mailer    *mockSvc.MockMailer
	publisher *mockSvc.MockEventPublisher
	qrcode    *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	prodRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOrderService(txManager, gateway, mailer, publisher, qrcode, logger)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		factory:   factory,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		prodRepo:  prodRepo,
		orderRepo: orderRepo,
		gateway:   gateway,
		mailer:    mailer,
		publisher: publisher,
		qrcode:    qrcode,
	}
}

func checkoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		PaymentMethod: entity.PaymentMethodCreditCard,
		ShippingAddr: usecase.AddressInput{
			Line1:   "12 KG 5 Ave",
			City:    "Kigali",
			Country: "rw",
		},
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "client@example.com"}

	product := testProduct("Protein Powder", 50, 10)
	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Quantity: 2},
		},
	}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.prodRepo.EXPECT().FindByIDsForUpdate(ctx, mock.Anything).Return([]*entity.Product{product}, nil)
	fx.prodRepo.EXPECT().AdjustInventory(ctx, product.ID, -2).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartRepo.EXPECT().DeleteItems(ctx, cart.ID).Return(nil)

	fx.mailer.EXPECT().SendOrderConfirmation(ctx, user.Email, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.Checkout(ctx, userID, checkoutInput())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 1)

	// 2 x 50 subtotal, 10% tax, free shipping over the threshold
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, order.TaxAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, order.ShippingAmount.IsZero())
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(110)))
	assert.Equal(t, "RW", order.ShippingAddress.Country)
	assert.Equal(t, order.ShippingAddress, order.BillingAddress)
	assert.NotNil(t, order.EstimatedDeliveryDate)
}

func TestOrderService_Checkout_SnapshotsDiscountPrice(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "client@example.com"}

	product := testProduct("Creatine", 30, 5)
	discount := decimal.NewFromInt(20)
	product.DiscountPrice = &discount

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Quantity: 1},
		},
	}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.prodRepo.EXPECT().FindByIDsForUpdate(ctx, mock.Anything).Return([]*entity.Product{product}, nil)
	fx.prodRepo.EXPECT().AdjustInventory(ctx, product.ID, -1).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartRepo.EXPECT().DeleteItems(ctx, cart.ID).Return(nil)
	fx.mailer.EXPECT().SendOrderConfirmation(ctx, user.Email, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := fx.service.Checkout(ctx, userID, checkoutInput())

	require.NoError(t, err)
	item := order.Items[0]
	assert.True(t, item.UnitPrice.Equal(discount))
	assert.True(t, item.Price.Equal(decimal.NewFromInt(30)))
	require.NotNil(t, item.DiscountPrice)
	// 20 subtotal, 2 tax, 5 domestic shipping below the free threshold
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(27)), "got %s", order.TotalAmount)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Cart{ID: uuid.New(), UserID: userID}, nil)

	_, err := fx.service.Checkout(ctx, userID, checkoutInput())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_Checkout_InsufficientInventory(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Jump Rope", 18, 1)

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Quantity: 3},
		},
	}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.prodRepo.EXPECT().FindByIDsForUpdate(ctx, mock.Anything).Return([]*entity.Product{product}, nil)

	_, err := fx.service.Checkout(ctx, userID, checkoutInput())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartInvalid))
}

func TestOrderService_Checkout_PaymentSuccess(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "client@example.com"}
	product := testProduct("Treadmill Mat", 60, 4)

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Quantity: 1},
		},
	}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.prodRepo.EXPECT().FindByIDsForUpdate(ctx, mock.Anything).Return([]*entity.Product{product}, nil)
	fx.prodRepo.EXPECT().AdjustInventory(ctx, product.ID, -1).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartRepo.EXPECT().DeleteItems(ctx, cart.ID).Return(nil)

	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.PaymentRequest")).
		Return(&service.PaymentResult{Succeeded: true, Reference: "pay_123"}, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	fx.mailer.EXPECT().SendOrderConfirmation(ctx, user.Email, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	input := checkoutInput()
	input.PaymentDetails = &service.PaymentDetails{CardNumber: "4242424242424242", CVV: "123"}

	order, err := fx.service.Checkout(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
}

func TestOrderService_Checkout_PaymentDeclinedCompensates(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "client@example.com"}
	product := testProduct("Rowing Machine", 90, 2)

	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Quantity: 1},
		},
	}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.prodRepo.EXPECT().FindByIDsForUpdate(ctx, mock.Anything).Return([]*entity.Product{product}, nil)
	fx.prodRepo.EXPECT().AdjustInventory(ctx, product.ID, -1).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartRepo.EXPECT().DeleteItems(ctx, cart.ID).Return(nil)

	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.PaymentRequest")).
		Return(&service.PaymentResult{Succeeded: false, FailureReason: "card declined"}, nil)

	// Compensation: inventory restored, order retained as cancelled/failed.
	fx.prodRepo.EXPECT().AdjustInventory(ctx, product.ID, 1).Return(nil)
	var retained *entity.Order
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			retained = order
		}).
		Return(nil)

	input := checkoutInput()
	input.PaymentDetails = &service.PaymentDetails{CardNumber: "4000000000000002", CVV: "123"}

	_, err := fx.service.Checkout(ctx, userID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentFailed))
	require.NotNil(t, retained)
	assert.Equal(t, entity.OrderStatusCancelled, retained.Status)
	assert.Equal(t, entity.PaymentStatusFailed, retained.PaymentStatus)
}

func TestOrderService_UpdateOrderStatus_ValidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusProcessing}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, orderID, &usecase.UpdateOrderStatusInput{
		Status:         entity.OrderStatusShipped,
		TrackingNumber: "TRK-42",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
	assert.Equal(t, "TRK-42", updated.TrackingNumber)
	assert.NotNil(t, updated.ShippedAt)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusPending,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_UpdatePaymentStatus_PaidConfirmsOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPending}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	updated, err := fx.service.UpdatePaymentStatus(ctx, orderID, entity.PaymentStatusPaid)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_UpdatePaymentStatus_FailedCancelsAndRestoresInventory(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		OrderNumber:   "ORD-3",
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: productID, Quantity: 3},
		},
	}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.prodRepo.EXPECT().AdjustInventory(ctx, productID, 3).Return(nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	updated, err := fx.service.UpdatePaymentStatus(ctx, orderID, entity.PaymentStatusFailed)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, updated.PaymentStatus)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_UpdatePaymentStatus_FailedOnCancelledKeepsInventory(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		Status:        entity.OrderStatusCancelled,
		PaymentStatus: entity.PaymentStatusPending,
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2},
		},
	}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	// The quantities were already restored when the order was cancelled
	updated, err := fx.service.UpdatePaymentStatus(ctx, orderID, entity.PaymentStatusFailed)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	fx.prodRepo.AssertNotCalled(t, "AdjustInventory", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_GetAllOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: uuid.New(), OrderNumber: "ORD-10", Status: entity.OrderStatusPending},
		{ID: uuid.New(), OrderNumber: "ORD-11", Status: entity.OrderStatusDelivered},
	}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindAll(ctx, 10, 10).Return(orders, int64(12), nil)

	page, err := fx.service.GetAllOrders(ctx, 2, 10)

	require.NoError(t, err)
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 2, page.Page)
}

func TestOrderService_CancelOrder_RestoresInventory(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		OrderNumber:   "ORD-1",
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: productID, Quantity: 2},
		},
	}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.prodRepo.EXPECT().AdjustInventory(ctx, productID, 2).Return(nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	cancelled, err := fx.service.CancelOrder(ctx, orderID, "changed my mind")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, cancelled.PaymentStatus)
	assert.Contains(t, cancelled.CustomerNotes, "changed my mind")
}

func TestOrderService_CancelOrder_StampsRequestIDOnEvent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	orderID := uuid.New()
	productID := uuid.New()
	order := &entity.Order{
		ID:          orderID,
		OrderNumber: "ORD-5",
		Status:      entity.OrderStatusPending,
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: productID, Quantity: 1},
		},
	}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.prodRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.prodRepo.EXPECT().AdjustInventory(ctx, productID, 1).Return(nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	var published *service.OrderEvent
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		RunAndReturn(func(_ context.Context, event *service.OrderEvent) error {
			published = event

			return nil
		})

	_, err := fx.service.CancelOrder(ctx, orderID, "")

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, "req-42", published.RequestID)
	assert.Equal(t, service.OrderEventCancelled, published.Type)
}

func TestOrderService_CancelOrder_ShippedRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusShipped}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, orderID, "")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotCancellable))
}

func TestOrderService_CancelOrder_AlreadyCancelledIsIdempotent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderNumber: "ORD-2", Status: entity.OrderStatusCancelled}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	// No inventory restore, no update, no repeated cancellation event
	cancelled, err := fx.service.CancelOrder(ctx, orderID, "")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_TrackingQR_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:             orderID,
		OrderNumber:    "ORD-3",
		Status:         entity.OrderStatusShipped,
		TrackingNumber: "TRK-42",
	}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.qrcode.EXPECT().GenerateTrackingQR("ORD-3", "TRK-42").Return([]byte{0x89, 0x50}, nil)

	png, err := fx.service.TrackingQR(ctx, orderID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_TrackingQR_NoTrackingNumber(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusPending}

	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.TrackingQR(ctx, orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBuildOrder_Totals(t *testing.T) {
	productA := &entity.Product{ID: uuid.New(), Name: "Yoga Mat", Price: decimal.RequireFromString("49.99")}
	productB := &entity.Product{ID: uuid.New(), Name: "Resistance Band", Price: decimal.RequireFromString("34.99")}

	cart := &entity.Cart{
		UserID: uuid.New(),
		Items: []*entity.CartItem{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		},
	}
	byID := map[uuid.UUID]*entity.Product{
		productA.ID: productA,
		productB.ID: productB,
	}
	input := &usecase.CheckoutInput{
		PaymentMethod: entity.PaymentMethodCreditCard,
		ShippingAddr: usecase.AddressInput{
			Line1:   "1 Main St",
			City:    "Springfield",
			Country: "US",
		},
	}

	order := buildOrder(cart.UserID, cart, byID, input)

	// 2 x 49.99 + 34.99, free shipping over the threshold, 10% tax
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("134.97")), "subtotal %s", order.Subtotal)
	assert.True(t, order.ShippingAmount.IsZero(), "shipping %s", order.ShippingAmount)
	assert.True(t, order.TaxAmount.Equal(decimal.RequireFromString("13.497")), "tax %s", order.TaxAmount)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("148.467")), "total %s", order.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	assert.NotNil(t, order.EstimatedDeliveryDate)
}

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		country  string
		want     int64
	}{
		{"free over threshold", 100, "US", 0},
		{"domestic", 40, "RW", 5},
		{"domestic long form", 40, "RWANDA", 5},
		{"tier one", 40, "US", 15},
		{"tier two", 40, "DE", 20},
		{"rest of world", 40, "JP", 25},
		{"lowercase country", 40, "gb", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shippingCost(decimal.NewFromInt(tt.subtotal), tt.country)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, entity.OrderStatusPending.CanTransitionTo(entity.OrderStatusConfirmed))
	assert.True(t, entity.OrderStatusOutForDelivery.CanTransitionTo(entity.OrderStatusDelivered))
	assert.True(t, entity.OrderStatusDelivered.CanTransitionTo(entity.OrderStatusReturned))
	assert.False(t, entity.OrderStatusDelivered.CanTransitionTo(entity.OrderStatusCancelled))
	assert.False(t, entity.OrderStatusPending.CanTransitionTo(entity.OrderStatusShipped))
	assert.False(t, entity.OrderStatusCancelled.CanTransitionTo(entity.OrderStatusPending))
}
