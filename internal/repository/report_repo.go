package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RankedTotal is one row of a top-N ranking (product or client) by the raw
// entered quantity of its order lines.
type RankedTotal struct {
	Name  string
	Total decimal.Decimal
}

// MonthlyTotal is the summed entered quantity of one calendar month.
type MonthlyTotal struct {
	Month string // YYYY-MM
	Total decimal.Decimal
}

// ReportRepository serves the statistics view with aggregate queries the
// entity repositories have no business exposing.
type ReportRepository interface {
	TopProducts(ctx context.Context, limit int) ([]RankedTotal, error)
	TopClients(ctx context.Context, limit int) ([]RankedTotal, error)
	MonthlyTrend(ctx context.Context) ([]MonthlyTotal, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) TopProducts(ctx context.Context, limit int) ([]RankedTotal, error) {
	var rows []RankedTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.name AS name, SUM(l.quantity) AS total
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		GROUP BY p.id, p.name
		ORDER BY total DESC
		LIMIT ?`, limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) TopClients(ctx context.Context, limit int) ([]RankedTotal, error) {
	var rows []RankedTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.name AS name, SUM(l.quantity) AS total
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		JOIN clients c ON c.id = o.client_id
		GROUP BY c.id, c.name
		ORDER BY total DESC
		LIMIT ?`, limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) MonthlyTrend(ctx context.Context) ([]MonthlyTotal, error) {
	var rows []MonthlyTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT LEFT(o.date, 7) AS month, SUM(l.quantity) AS total
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		GROUP BY month
		ORDER BY month ASC`).
		Scan(&rows).Error
	return rows, err
}
