package postgres

import (
	"context"

	"sheshape/internal/domain/entity"
	"sheshape/internal/domain/repository"
	"sheshape/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs fetches a batch of products in one query. Missing ids are simply
// absent from the result.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByIDsForUpdate fetches the products while taking SELECT ... FOR UPDATE
// row locks, pinning their inventory counts for the rest of the transaction.
// Rows are locked in a stable id order to avoid deadlocks between concurrent
// checkouts sharing products.
func (repo *productRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock products for update")
	}

	return toProductDomainSlice(productModels), nil
}

// ListActive returns active products ordered by creation time, newest first,
// with the total count for pagination.
func (repo *productRepository) ListActive(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("active = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count active products")
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list active products")
	}

	return toProductDomainSlice(productModels), total, nil
}

// AdjustInventory adds delta (negative to decrement) to the product's
// inventory count. The update is conditional so a decrement can never push
// the count below zero; such an attempt affects no rows.
func (repo *productRepository) AdjustInventory(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND inventory_count + ? >= 0", id, delta).
		Update("inventory_count", gorm.Expr("inventory_count + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust inventory")
	}

	if result.RowsAffected == 0 {
		// Either the product is gone or the decrement would go negative.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to verify product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientInventory
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		DiscountPrice:  data.DiscountPrice,
		Categories:     data.Categories,
		ImageURL:       data.ImageURL,
		InventoryCount: data.InventoryCount,
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toProductDomainSlice(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}
