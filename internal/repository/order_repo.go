package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
)

// OrderSummaryRow is one aggregated row of the order list: header fields plus
// line count and total kilograms computed over the order's lines.
type OrderSummaryRow struct {
	ID         uuid.UUID
	Date       string
	ClientName string
	ClientCode *string
	LineCount  int
	TotalKg    decimal.Decimal
}

// LoadListJoinRow is one order line of a date joined with its client and
// product, still in the unit it was entered in. Normalization to kg/trays
// happens in the service through the unit converter.
type LoadListJoinRow struct {
	Date        string
	ClientName  string
	ClientCode  *string
	ProductName string
	ProductCode *string
	KgPerTray   decimal.Decimal
	Quantity    decimal.Decimal
	UnitType    string
}

type OrderRepository interface {
	// CreateTx persists the order header and its lines in the caller's
	// transaction — intake's all-or-nothing guarantee depends on it.
	CreateTx(tx *gorm.DB, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListSummaries(ctx context.Context) ([]OrderSummaryRow, error)
	// AllLines returns every order line (no preloads) for the stock calculator.
	AllLines(ctx context.Context) ([]model.OrderLine, error)
	LinesForProduct(ctx context.Context, productID uuid.UUID) ([]model.OrderLine, error)
	LoadListRows(ctx context.Context, date string) ([]LoadListJoinRow, error)
	// OrdersForDate returns the date's orders with client and lines preloaded,
	// sorted client name then creation order — the day-document layout.
	OrdersForDate(ctx context.Context, date string) ([]model.Order, error)
	// DeleteCascade removes the order's lines and then its header atomically.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) CreateTx(tx *gorm.DB, o *model.Order) error {
	return tx.Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Lines.Product").
		First(&o, id).Error
	return &o, err
}

func (r *orderRepo) ListSummaries(ctx context.Context) ([]OrderSummaryRow, error) {
	var rows []OrderSummaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id,
		       o.date,
		       c.name AS client_name,
		       c.code AS client_code,
		       COUNT(l.id) AS line_count,
		       SUM(CASE WHEN l.unit_type = 'kg' THEN l.quantity
		                ELSE l.quantity * p.kg_per_tray END) AS total_kg
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		JOIN order_lines l ON l.order_id = o.id
		JOIN products p ON p.id = l.product_id
		GROUP BY o.id, o.date, c.name, c.code, o.created_at
		ORDER BY o.date DESC, o.created_at DESC`).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) AllLines(ctx context.Context) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	err := r.db.WithContext(ctx).
		Select("product_id", "quantity", "unit_type").
		Find(&lines).Error
	return lines, err
}

func (r *orderRepo) LinesForProduct(ctx context.Context, productID uuid.UUID) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&lines).Error
	return lines, err
}

func (r *orderRepo) LoadListRows(ctx context.Context, date string) ([]LoadListJoinRow, error) {
	var rows []LoadListJoinRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.date,
		       c.name AS client_name,
		       c.code AS client_code,
		       p.name AS product_name,
		       p.code AS product_code,
		       p.kg_per_tray,
		       l.quantity,
		       l.unit_type
		FROM order_lines l
		JOIN orders o ON l.order_id = o.id
		JOIN clients c ON o.client_id = c.id
		JOIN products p ON l.product_id = p.id
		WHERE o.date = ?
		ORDER BY c.name ASC, p.name ASC`, date).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) OrdersForDate(ctx context.Context, date string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Joins("JOIN clients ON clients.id = orders.client_id").
		Where("orders.date = ?", date).
		Order("clients.name ASC, orders.created_at ASC").
		Preload("Client").
		Preload("Lines.Product").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderLine{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
