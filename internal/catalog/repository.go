package catalog

import (
	"context"

	"github.com/pkg/errors"
	"github.com/talkincode/productcatalog/internal/domain"
	"gorm.io/gorm"
)

// ProductRepository is the storage contract of the productos table
type ProductRepository interface {
	// List returns every row ordered by ascending id
	List(ctx context.Context) ([]domain.Product, error)

	// Create inserts a row; the store assigns id and created_at
	Create(ctx context.Context, product *domain.Product) error

	// Count returns the number of stored rows
	Count(ctx context.Context) (int64, error)
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return products, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(product).Error; err != nil {
		return errors.WithStack(err)
	}
	// created_at comes from the column default
	if product.CreatedAt.IsZero() {
		return errors.WithStack(db.Select("created_at").Take(product, product.ID).Error)
	}
	return nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}
	return count, nil
}
