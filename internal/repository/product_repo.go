package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
)

// ProductRepository defines the data access contract for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	// List returns the full catalog sorted by name — the ordering the stock
	// snapshot and every export rely on for deterministic output.
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	// CountReferences feeds the referential guard: order lines plus
	// production entries pointing at the product.
	CountReferences(ctx context.Context, productID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) CountReferences(ctx context.Context, productID uuid.UUID) (int64, error) {
	var lines, entries int64
	if err := r.db.WithContext(ctx).Model(&model.OrderLine{}).
		Where("product_id = ?", productID).Count(&lines).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.ProductionEntry{}).
		Where("product_id = ?", productID).Count(&entries).Error; err != nil {
		return 0, err
	}
	return lines + entries, nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
