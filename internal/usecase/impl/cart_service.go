// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"sheshape/internal/domain/entity"
	domainerrors "sheshape/internal/domain/errors"
	"sheshape/internal/domain/repository"
	"sheshape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetCart retrieves the user's cart with live product data and derived totals.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	srv.logger.Debug("Getting cart", "userID", userID)

	var view *usecase.CartView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := repoFactory.CartRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				view = emptyCartView(userID)

				return nil
			}

			return errors.Wrap(err, "failed to find cart")
		}

		view, err = srv.buildCartView(ctx, repoFactory, cart)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return view, nil
}

// AddItem puts a product into the cart, creating the cart lazily. Adding a
// product already in the cart increases its quantity.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	srv.logger.Info("Adding cart item", "userID", userID, "productID", input.ProductID, "quantity", input.Quantity)

	var view *usecase.CartView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// 1. Validate the product before touching the cart
		product, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		if !product.Active {
			return errors.Wrap(domainerrors.ErrProductUnavailable, "product is inactive")
		}

		// 2. Find or lazily create the cart
		cart, err := cartRepo.FindByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(err, "failed to find cart")
			}

			cart = &entity.Cart{ID: uuid.New(), UserID: userID}
			if err := cartRepo.Create(ctx, cart); err != nil {
				return errors.Wrap(err, "failed to create cart")
			}
		}

		// 3. Merge into an existing line or append a new one
		requested := input.Quantity
		item := cart.ItemFor(input.ProductID)
		if item != nil {
			requested += item.Quantity
		}
		if !product.HasInventory(requested) {
			return errors.Wrapf(domainerrors.ErrInsufficientInventory,
				"requested %d of %q, %d in stock", requested, product.Name, product.InventoryCount)
		}

		now := time.Now()
		if item != nil {
			item.Quantity = requested
			item.UpdatedAt = now
		} else {
			item = &entity.CartItem{
				ID:        uuid.New(),
				CartID:    cart.ID,
				ProductID: input.ProductID,
				Quantity:  requested,
				AddedAt:   now,
				UpdatedAt: now,
			}
			cart.Items = append(cart.Items, item)
		}

		if err := cartRepo.SaveItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to save cart item")
		}

		view, err = srv.buildCartView(ctx, repoFactory, cart)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return view, nil
}

// UpdateItemQuantity sets the quantity of an existing line. Zero removes the line.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	srv.logger.Info("Updating cart item quantity", "userID", userID, "productID", productID, "quantity", quantity)

	if quantity < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must not be negative")
	}

	var view *usecase.CartView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartNotFound, "cart not found")
			}

			return errors.Wrap(err, "failed to find cart")
		}

		item := cart.ItemFor(productID)
		if item == nil {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "product not in cart")
		}

		if quantity == 0 {
			if err := cartRepo.DeleteItem(ctx, cart.ID, productID); err != nil {
				return errors.Wrap(err, "failed to delete cart item")
			}
			cart.Items = removeCartItem(cart.Items, productID)
		} else {
			product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
				}

				return errors.Wrap(err, "failed to find product")
			}
			if !product.HasInventory(quantity) {
				return errors.Wrapf(domainerrors.ErrInsufficientInventory,
					"requested %d of %q, %d in stock", quantity, product.Name, product.InventoryCount)
			}

			item.Quantity = quantity
			item.UpdatedAt = time.Now()
			if err := cartRepo.SaveItem(ctx, item); err != nil {
				return errors.Wrap(err, "failed to save cart item")
			}
		}

		view, err = srv.buildCartView(ctx, repoFactory, cart)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	return view, nil
}

// RemoveItem deletes the line for the product.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*usecase.CartView, error) {
	srv.logger.Info("Removing cart item", "userID", userID, "productID", productID)

	var view *usecase.CartView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartNotFound, "cart not found")
			}

			return errors.Wrap(err, "failed to find cart")
		}

		if cart.ItemFor(productID) == nil {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "product not in cart")
		}

		if err := cartRepo.DeleteItem(ctx, cart.ID, productID); err != nil {
			return errors.Wrap(err, "failed to delete cart item")
		}
		cart.Items = removeCartItem(cart.Items, productID)

		view, err = srv.buildCartView(ctx, repoFactory, cart)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return view, nil
}

// ClearCart deletes every line from the user's cart. Clearing a missing cart
// is a no-op.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Clearing cart", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find cart")
		}

		if err := cartRepo.DeleteItems(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to delete cart items")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// ValidateCart checks every line against the live catalog and reports
// per-item issues. An empty or missing cart is reported as an issue, not an
// error, so the client always gets the structured result.
func (srv *cartService) ValidateCart(ctx context.Context, userID uuid.UUID) (*usecase.CartValidationResult, error) {
	srv.logger.Debug("Validating cart", "userID", userID)

	var result *usecase.CartValidationResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := repoFactory.CartRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				result = &usecase.CartValidationResult{
					Valid:  false,
					Issues: []usecase.CartIssue{{Reason: "cart is empty"}},
				}

				return nil
			}

			return errors.Wrap(err, "failed to find cart")
		}

		issues, err := collectCartIssues(ctx, repoFactory.ProductRepo(), cart)
		if err != nil {
			return err
		}
		result = &usecase.CartValidationResult{
			Valid:  len(issues) == 0,
			Issues: issues,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate cart")
	}

	return result, nil
}

// collectCartIssues checks the cart lines against the live catalog. It is
// shared by cart validation and the checkout pipeline.
func collectCartIssues(ctx context.Context, productRepo repository.ProductRepository, cart *entity.Cart) ([]usecase.CartIssue, error) {
	if cart.IsEmpty() {
		return []usecase.CartIssue{{Reason: "cart is empty"}}, nil
	}

	products, err := productRepo.FindByIDs(ctx, cartProductIDs(cart))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}
	byID := indexProducts(products)

	issues := make([]usecase.CartIssue, 0)
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		switch {
		case !ok:
			issues = append(issues, usecase.CartIssue{
				ProductID: item.ProductID,
				Reason:    "product no longer exists",
			})
		case !product.Active:
			issues = append(issues, usecase.CartIssue{
				ProductID:   item.ProductID,
				ProductName: product.Name,
				Reason:      "product is no longer available",
			})
		case !product.HasInventory(item.Quantity):
			issues = append(issues, usecase.CartIssue{
				ProductID:   item.ProductID,
				ProductName: product.Name,
				Reason:      "insufficient inventory",
			})
		}
	}

	return issues, nil
}

// buildCartView joins the cart lines with live product data and recomputes
// the totals.
func (srv *cartService) buildCartView(ctx context.Context, repoFactory repository.RepositoryFactory, cart *entity.Cart) (*usecase.CartView, error) {
	view := &usecase.CartView{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  make([]*usecase.CartItemView, 0, len(cart.Items)),
	}

	if cart.IsEmpty() {
		view.TotalAmount = decimal.Zero
		view.UpdatedAt = cart.UpdatedAt

		return view, nil
	}

	products, err := repoFactory.ProductRepo().FindByIDs(ctx, cartProductIDs(cart))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}
	byID := indexProducts(products)

	total := decimal.Zero
	updatedAt := cart.UpdatedAt
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			// Orphaned lines stay visible so the client can remove them.
			view.Items = append(view.Items, &usecase.CartItemView{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				AddedAt:   item.AddedAt,
			})

			continue
		}

		unit := product.EffectiveUnitPrice()
		lineTotal := unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, &usecase.CartItemView{
			ID:                 item.ID,
			ProductID:          product.ID,
			ProductName:        product.Name,
			ProductDescription: product.Description,
			ProductCategory:    firstCategory(product.Categories),
			ProductImageURL:    product.ImageURL,
			Price:              product.Price,
			DiscountPrice:      product.DiscountPrice,
			UnitPrice:          unit,
			Quantity:           item.Quantity,
			TotalPrice:         lineTotal,
			AvailableStock:     product.InventoryCount,
			Available:          product.Active && product.HasInventory(item.Quantity),
			AddedAt:            item.AddedAt,
		})

		view.TotalItems += item.Quantity
		total = total.Add(lineTotal)
		if item.UpdatedAt.After(updatedAt) {
			updatedAt = item.UpdatedAt
		}
	}
	view.TotalAmount = total
	view.UpdatedAt = updatedAt

	return view, nil
}

func emptyCartView(userID uuid.UUID) *usecase.CartView {
	return &usecase.CartView{
		UserID:      userID,
		Items:       []*usecase.CartItemView{},
		TotalAmount: decimal.Zero,
	}
}

func cartProductIDs(cart *entity.Cart) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	return ids
}

func indexProducts(products []*entity.Product) map[uuid.UUID]*entity.Product {
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return byID
}

func removeCartItem(items []*entity.CartItem, productID uuid.UUID) []*entity.CartItem {
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	return kept
}

func firstCategory(categories []string) string {
	if len(categories) == 0 {
		return ""
	}

	return categories[0]
}
