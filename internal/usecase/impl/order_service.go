package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sheshape/internal/delivery/context"
	"sheshape/internal/domain/entity"
	domainerrors "sheshape/internal/domain/errors"
	"sheshape/internal/domain/repository"
	"sheshape/internal/domain/service"
	"sheshape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Pricing policy constants. Amounts are in the store currency.
var (
	taxRate               = decimal.NewFromFloat(0.10)
	freeShippingThreshold = decimal.NewFromInt(100)

	shippingDomestic     = decimal.NewFromInt(5)  // RW
	shippingTierOne      = decimal.NewFromInt(15) // US, CA, GB
	shippingTierTwo      = decimal.NewFromInt(20) // AU, DE, FR, IT, ES
	shippingInternationl = decimal.NewFromInt(25) // everywhere else
)

const estimatedDeliveryDays = 7

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	gateway   service.PaymentGateway
	mailer    service.Mailer
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	gateway service.PaymentGateway,
	mailer service.Mailer,
	publisher service.EventPublisher,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		gateway:   gateway,
		mailer:    mailer,
		publisher: publisher,
		qrcode:    qrcode,
		logger:    logger,
	}
}

// Checkout converts the user's cart into an order. Inventory is decremented
// under row locks inside the same transaction that persists the order, so two
// concurrent checkouts can never oversell a product.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	srv.logger.Info("Starting checkout", "userID", userID, "paymentMethod", input.PaymentMethod)

	if !input.PaymentMethod.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment method")
	}

	var (
		order *entity.Order
		user  *entity.User
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		// 1. Resolve the user for the confirmation email
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		// 2. Load the cart
		cart, err := cartRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrEmptyCart, "user has no cart")
			}

			return errors.Wrap(err, "failed to find cart")
		}
		if cart.IsEmpty() {
			return errors.Wrap(domainerrors.ErrEmptyCart, "cart has no items")
		}

		// 3. Lock the products; their inventory counts are now pinned until commit
		products, err := productRepo.FindByIDsForUpdate(ctx, cartProductIDs(cart))
		if err != nil {
			return errors.Wrap(err, "failed to lock cart products")
		}
		byID := indexProducts(products)

		// 4. Re-validate every line against the locked rows
		if issues := validateLockedCart(cart, byID); len(issues) > 0 {
			return errors.Wrap(domainerrors.ErrCartInvalid.WithDetails(describeIssues(issues)), "cart validation failed")
		}

		// 5. Snapshot the items and compute totals
		order = buildOrder(userID, cart, byID, input)

		// 6. Decrement inventory; the conditional update is a second guard on
		// top of the row locks
		for _, item := range order.Items {
			if err := productRepo.AdjustInventory(ctx, item.ProductID, -item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientInventory) {
					return errors.Wrapf(domainerrors.ErrInsufficientInventory, "product %q", item.ProductName)
				}

				return errors.Wrap(err, "failed to adjust inventory")
			}
		}

		// 7. Persist the order
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 8. Clear the cart
		if err := cartRepo.DeleteItems(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "checkout failed")
	}

	// 9. Charge payment outside the order transaction so a slow gateway never
	// holds row locks. Failure compensates: inventory back, order cancelled.
	if input.PaymentDetails != nil {
		if err := srv.processPayment(ctx, order, input.PaymentDetails); err != nil {
			return nil, err
		}
	}

	// 10. Side effects are best-effort: the order stands even if they fail
	srv.notifyOrderCreated(ctx, user, order)

	srv.logger.Info("Checkout complete", "orderNumber", order.OrderNumber, "total", order.TotalAmount)

	return order, nil
}

// processPayment charges the gateway and records the outcome. A declined or
// failed charge keeps the order as a CANCELLED record for audit, restores the
// inventory and reports a payment error to the caller.
func (srv *orderService) processPayment(ctx context.Context, order *entity.Order, details *service.PaymentDetails) error {
	result, chargeErr := srv.gateway.Charge(ctx, &service.PaymentRequest{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Method:      order.PaymentMethod,
		Amount:      order.TotalAmount,
		Details:     details,
	})

	if chargeErr == nil && result.Succeeded {
		order.PaymentStatus = entity.PaymentStatusPaid
		order.Status = entity.OrderStatusConfirmed

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.OrderRepo().Update(ctx, order)
		})
		if err != nil {
			return errors.Wrap(err, "failed to record payment success")
		}

		return nil
	}

	reason := "payment gateway unavailable"
	if chargeErr == nil {
		reason = result.FailureReason
	} else {
		srv.logger.Error("payment gateway call failed", "orderNumber", order.OrderNumber, "error", chargeErr)
	}

	if err := srv.compensateFailedPayment(ctx, order); err != nil {
		srv.logger.Error("failed to compensate failed payment", "orderNumber", order.OrderNumber, "error", err)

		return errors.Wrap(err, "failed to roll back order after payment failure")
	}

	return errors.Wrap(domainerrors.ErrPaymentFailed.WithDetails(reason), "payment declined")
}

// compensateFailedPayment restores the ordered quantities and retains the
// order as CANCELLED/FAILED for audit.
func (srv *orderService) compensateFailedPayment(ctx context.Context, order *entity.Order) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		for _, item := range order.Items {
			if err := repoFactory.ProductRepo().AdjustInventory(ctx, item.ProductID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to restore inventory")
			}
		}

		order.Status = entity.OrderStatusCancelled
		order.PaymentStatus = entity.PaymentStatusFailed
		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		return nil
	})
}

// notifyOrderCreated sends the confirmation email and publishes the order
// event. Both are best-effort.
func (srv *orderService) notifyOrderCreated(ctx context.Context, user *entity.User, order *entity.Order) {
	if err := srv.mailer.SendOrderConfirmation(ctx, user.Email, order); err != nil {
		srv.logger.Error("failed to send order confirmation", "orderNumber", order.OrderNumber, "error", err)
	}

	event := &service.OrderEvent{
		Type:        service.OrderEventCreated,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		ItemCount:   len(order.Items),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Error("failed to publish order event", "orderNumber", order.OrderNumber, "error", err)
	}
}

// GetOrder retrieves an order with its items.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// GetOrderByNumber retrieves an order by its public number.
func (srv *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByOrderNumber(ctx, orderNumber)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order by number")
	}

	return order, nil
}

// GetUserOrders returns one page of the user's order history, newest first.
func (srv *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID, page, size int) (*usecase.OrderPage, error) {
	page, size = normalizePage(page, size)

	var result *usecase.OrderPage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders, total, err := repoFactory.OrderRepo().FindByUserID(ctx, userID, (page-1)*size, size)
		if err != nil {
			return errors.Wrap(err, "failed to list user orders")
		}
		result = &usecase.OrderPage{Orders: orders, Total: total, Page: page, Size: size}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user orders")
	}

	return result, nil
}

// GetUserRecentOrders returns the user's most recent orders.
func (srv *orderService) GetUserRecentOrders(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}

	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, _, err := repoFactory.OrderRepo().FindByUserID(ctx, userID, 0, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list user orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get recent orders")
	}

	return orders, nil
}

// GetOrdersByStatus returns one page of orders in the given status.
func (srv *orderService) GetOrdersByStatus(ctx context.Context, status entity.OrderStatus, page, size int) (*usecase.OrderPage, error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status")
	}
	page, size = normalizePage(page, size)

	var result *usecase.OrderPage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders, total, err := repoFactory.OrderRepo().FindByStatus(ctx, status, (page-1)*size, size)
		if err != nil {
			return errors.Wrap(err, "failed to list orders by status")
		}
		result = &usecase.OrderPage{Orders: orders, Total: total, Page: page, Size: size}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get orders by status")
	}

	return result, nil
}

// GetAllOrders returns one page of every order regardless of owner or status.
func (srv *orderService) GetAllOrders(ctx context.Context, page, size int) (*usecase.OrderPage, error) {
	page, size = normalizePage(page, size)

	var result *usecase.OrderPage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders, total, err := repoFactory.OrderRepo().FindAll(ctx, (page-1)*size, size)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		result = &usecase.OrderPage{Orders: orders, Total: total, Page: page, Size: size}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get all orders")
	}

	return result, nil
}

// UpdateOrderStatus applies a guarded transition of the fulfillment status.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	status := input.Status
	srv.logger.Info("Updating order status", "orderID", orderID, "status", status)

	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !found.Status.CanTransitionTo(status) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "%s -> %s", found.Status, status)
		}

		now := time.Now()
		found.Status = status
		if input.TrackingNumber != "" {
			found.TrackingNumber = input.TrackingNumber
		}
		switch status {
		case entity.OrderStatusShipped:
			found.ShippedAt = &now
		case entity.OrderStatusDelivered:
			found.DeliveredAt = &now
		}

		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	return order, nil
}

// UpdatePaymentStatus records the payment outcome and synchronizes the
// fulfillment status: PAID confirms a pending order, FAILED cancels it.
func (srv *orderService) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) (*entity.Order, error) {
	srv.logger.Info("Updating payment status", "orderID", orderID, "status", status)

	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment status")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		found.PaymentStatus = status
		switch status {
		case entity.PaymentStatusPaid:
			if found.Status == entity.OrderStatusPending {
				found.Status = entity.OrderStatusConfirmed
			}
		case entity.PaymentStatusFailed:
			if found.Status.CanTransitionTo(entity.OrderStatusCancelled) {
				// Cancelling here releases the stock reserved at checkout,
				// same as an explicit cancellation would
				for _, item := range found.Items {
					if err := repoFactory.ProductRepo().AdjustInventory(ctx, item.ProductID, item.Quantity); err != nil {
						return errors.Wrap(err, "failed to restore inventory")
					}
				}
				found.Status = entity.OrderStatusCancelled
			}
		}

		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update payment status")
	}

	return order, nil
}

// CancelOrder restores the ordered quantities to inventory and marks the
// order cancelled. Shipped and delivered orders are rejected.
func (srv *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) (*entity.Order, error) {
	srv.logger.Info("Cancelling order", "orderID", orderID)

	var (
		order            *entity.Order
		alreadyCancelled bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if found.Status == entity.OrderStatusCancelled {
			order = found
			alreadyCancelled = true

			return nil
		}
		if !found.Cancellable() {
			return errors.Wrapf(domainerrors.ErrOrderNotCancellable, "order is %s", found.Status)
		}

		// Give the reserved quantities back to the catalog
		for _, item := range found.Items {
			if err := repoFactory.ProductRepo().AdjustInventory(ctx, item.ProductID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to restore inventory")
			}
		}

		found.Status = entity.OrderStatusCancelled
		if found.PaymentStatus == entity.PaymentStatusPaid {
			found.PaymentStatus = entity.PaymentStatusRefunded
		}
		if reason != "" {
			found.CustomerNotes = appendNote(found.CustomerNotes, "Cancellation reason: "+reason)
		}

		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	// A repeated cancel changed nothing, so downstream consumers hear nothing
	if alreadyCancelled {
		return order, nil
	}

	event := &service.OrderEvent{
		Type:        service.OrderEventCancelled,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		ItemCount:   len(order.Items),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Error("failed to publish order event", "orderNumber", order.OrderNumber, "error", err)
	}

	return order, nil
}

// TrackingQR renders a PNG QR code for the order's tracking label. Orders
// that have not shipped yet have no tracking number and are rejected.
func (srv *orderService) TrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.TrackingNumber == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order has no tracking number yet")
	}

	png, err := srv.qrcode.GenerateTrackingQR(order.OrderNumber, order.TrackingNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

// buildOrder snapshots the cart lines into immutable order items and computes
// the totals from the locked product rows.
func buildOrder(userID uuid.UUID, cart *entity.Cart, byID map[uuid.UUID]*entity.Product, input *usecase.CheckoutInput) *entity.Order {
	now := time.Now()
	shipping := input.ShippingAddr.ToEntity()
	billing := shipping
	if input.BillingAddr != nil {
		billing = input.BillingAddr.ToEntity()
	}

	order := &entity.Order{
		ID:            uuid.New(),
		OrderNumber:   newOrderNumber(now),
		UserID:        userID,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: input.PaymentMethod,

		ShippingAddress: shipping,
		BillingAddress:  billing,
		CustomerNotes:   input.CustomerNotes,

		DiscountAmount: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	subtotal := decimal.Zero
	for _, line := range cart.Items {
		product := byID[line.ProductID]
		unit := product.EffectiveUnitPrice()
		lineTotal := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))

		order.Items = append(order.Items, &entity.OrderItem{
			ID:                 uuid.New(),
			OrderID:            order.ID,
			ProductID:          product.ID,
			ProductName:        product.Name,
			ProductDescription: product.Description,
			ProductCategory:    firstCategory(product.Categories),
			ProductImageURL:    product.ImageURL,
			Quantity:           line.Quantity,
			Price:              product.Price,
			DiscountPrice:      product.DiscountPrice,
			UnitPrice:          unit,
			TotalPrice:         lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	order.Subtotal = subtotal
	order.TaxAmount = subtotal.Mul(taxRate)
	order.ShippingAmount = shippingCost(subtotal, shipping.Country)
	order.TotalAmount = subtotal.Add(order.TaxAmount).Add(order.ShippingAmount).Sub(order.DiscountAmount)

	estimated := now.AddDate(0, 0, estimatedDeliveryDays)
	order.EstimatedDeliveryDate = &estimated

	return order
}

// shippingCost applies the flat country tiers. Orders over the free shipping
// threshold ship free regardless of destination.
func shippingCost(subtotal decimal.Decimal, country string) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		return decimal.Zero
	}

	switch strings.ToUpper(country) {
	case "RW", "RWANDA":
		return shippingDomestic
	case "US", "CA", "GB":
		return shippingTierOne
	case "AU", "DE", "FR", "IT", "ES":
		return shippingTierTwo
	default:
		return shippingInternationl
	}
}

// validateLockedCart re-checks the cart against the locked product rows.
func validateLockedCart(cart *entity.Cart, byID map[uuid.UUID]*entity.Product) []usecase.CartIssue {
	issues := make([]usecase.CartIssue, 0)
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		switch {
		case !ok:
			issues = append(issues, usecase.CartIssue{ProductID: item.ProductID, Reason: "product no longer exists"})
		case !product.Active:
			issues = append(issues, usecase.CartIssue{ProductID: item.ProductID, ProductName: product.Name, Reason: "product is no longer available"})
		case !product.HasInventory(item.Quantity):
			issues = append(issues, usecase.CartIssue{ProductID: item.ProductID, ProductName: product.Name, Reason: "insufficient inventory"})
		}
	}

	return issues
}

func describeIssues(issues []usecase.CartIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		name := issue.ProductName
		if name == "" {
			name = issue.ProductID.String()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, issue.Reason))
	}

	return strings.Join(parts, "; ")
}

// newOrderNumber derives the public order number from the creation instant.
func newOrderNumber(at time.Time) string {
	return fmt.Sprintf("ORD-%d", at.UnixMilli())
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}

	return existing + "\n" + note
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	return page, size
}
