package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
)

// ProducedTotal is the summed tray output of one product.
type ProducedTotal struct {
	ProductID uuid.UUID
	Total     decimal.Decimal
}

type ProductionRepository interface {
	Create(ctx context.Context, e *model.ProductionEntry) error
	// ListWithProduct returns all entries newest first with products preloaded.
	ListWithProduct(ctx context.Context) ([]model.ProductionEntry, error)
	// SumTraysGrouped returns total produced trays per product in one pass —
	// the full-snapshot read uses it to avoid a query per product.
	SumTraysGrouped(ctx context.Context) ([]ProducedTotal, error)
	SumTraysForProduct(ctx context.Context, productID uuid.UUID) (decimal.Decimal, error)
}

type productionRepo struct{ db *gorm.DB }

func NewProductionRepository(db *gorm.DB) ProductionRepository {
	return &productionRepo{db: db}
}

func (r *productionRepo) Create(ctx context.Context, e *model.ProductionEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *productionRepo) ListWithProduct(ctx context.Context) ([]model.ProductionEntry, error) {
	var entries []model.ProductionEntry
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *productionRepo) SumTraysGrouped(ctx context.Context) ([]ProducedTotal, error) {
	var totals []ProducedTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT product_id, COALESCE(SUM(trays_produced), 0) AS total
		FROM production_entries
		GROUP BY product_id`).
		Scan(&totals).Error
	return totals, err
}

func (r *productionRepo) SumTraysForProduct(ctx context.Context, productID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(trays_produced), 0)
		FROM production_entries
		WHERE product_id = ?`, productID).
		Scan(&total).Error
	return total, err
}
