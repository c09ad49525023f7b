package postgres

import (
	"context"

	"sheshape/internal/domain/entity"
	domainerrors "sheshape/internal/domain/errors"
	"sheshape/internal/domain/repository"
	"sheshape/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its item snapshots.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("order number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user or product reference")
		}

		return errors.Wrap(err, "failed to create order")
	}

	// Propagate generated values back to the entity and its items.
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// Update persists mutations of status, payment status, tracking data and
// notes. The item snapshots are immutable and never touched.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":                  string(order.Status),
			"payment_status":          string(order.PaymentStatus),
			"customer_notes":          order.CustomerNotes,
			"tracking_number":         order.TrackingNumber,
			"estimated_delivery_date": order.EstimatedDeliveryDate,
			"shipped_at":              order.ShippedAt,
			"delivered_at":            order.DeliveredAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByOrderNumber retrieves an order with its items by its public number.
func (repo *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by order number")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUserID returns the user's orders, newest first, with the total count
// for pagination.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders by user")
	}

	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomainSlice(orderModels), total, nil
}

// FindByStatus returns orders in the given status, newest first, with the
// total count for pagination.
func (repo *orderRepository) FindByStatus(ctx context.Context, status entity.OrderStatus, offset, limit int) ([]*entity.Order, int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status = ?", string(status)).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders by status")
	}

	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find orders by status")
	}

	return toOrderDomainSlice(orderModels), total, nil
}

// FindAll returns orders across all users and statuses, newest first, with
// the total count for pagination.
func (repo *orderRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Order, int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find orders")
	}

	return toOrderDomainSlice(orderModels), total, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toOrderItemDomain(itemM))
	}

	return &entity.Order{
		ID:                    data.ID,
		OrderNumber:           data.OrderNumber,
		UserID:                data.UserID,
		Items:                 items,
		Status:                entity.OrderStatus(data.Status),
		PaymentStatus:         entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:         entity.PaymentMethod(data.PaymentMethod),
		Subtotal:              data.Subtotal,
		TaxAmount:             data.TaxAmount,
		ShippingAmount:        data.ShippingAmount,
		DiscountAmount:        data.DiscountAmount,
		TotalAmount:           data.TotalAmount,
		ShippingAddress:       toAddressDomain(data.ShippingAddress),
		BillingAddress:        toAddressDomain(data.BillingAddress),
		CustomerNotes:         data.CustomerNotes,
		TrackingNumber:        data.TrackingNumber,
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		ShippedAt:             data.ShippedAt,
		DeliveredAt:           data.DeliveredAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, fromOrderItemDomain(item))
	}

	return &model.OrderModel{
		ID:                    data.ID,
		OrderNumber:           data.OrderNumber,
		UserID:                data.UserID,
		Items:                 items,
		Status:                string(data.Status),
		PaymentStatus:         string(data.PaymentStatus),
		PaymentMethod:         string(data.PaymentMethod),
		Subtotal:              data.Subtotal,
		TaxAmount:             data.TaxAmount,
		ShippingAmount:        data.ShippingAmount,
		DiscountAmount:        data.DiscountAmount,
		TotalAmount:           data.TotalAmount,
		ShippingAddress:       fromAddressDomain(data.ShippingAddress),
		BillingAddress:        fromAddressDomain(data.BillingAddress),
		CustomerNotes:         data.CustomerNotes,
		TrackingNumber:        data.TrackingNumber,
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		ShippedAt:             data.ShippedAt,
		DeliveredAt:           data.DeliveredAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toOrderDomainSlice(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:                 data.ID,
		OrderID:            data.OrderID,
		ProductID:          data.ProductID,
		ProductName:        data.ProductName,
		ProductDescription: data.ProductDescription,
		ProductCategory:    data.ProductCategory,
		ProductImageURL:    data.ProductImageURL,
		Quantity:           data.Quantity,
		Price:              data.Price,
		DiscountPrice:      data.DiscountPrice,
		UnitPrice:          data.UnitPrice,
		TotalPrice:         data.TotalPrice,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:                 data.ID,
		OrderID:            data.OrderID,
		ProductID:          data.ProductID,
		ProductName:        data.ProductName,
		ProductDescription: data.ProductDescription,
		ProductCategory:    data.ProductCategory,
		ProductImageURL:    data.ProductImageURL,
		Quantity:           data.Quantity,
		Price:              data.Price,
		DiscountPrice:      data.DiscountPrice,
		UnitPrice:          data.UnitPrice,
		TotalPrice:         data.TotalPrice,
	}
}

func toAddressDomain(data model.AddressColumns) entity.Address {
	return entity.Address{
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}

func fromAddressDomain(data entity.Address) model.AddressColumns {
	return model.AddressColumns{
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}
