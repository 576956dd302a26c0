package dto

import "github.com/shopspring/decimal"

// ─── Statistics ──────────────────────────────────────────────────────────────

// Totals below sum raw entered quantities across unit types, matching the
// historical statistics view (ranking signal, not a stock figure).

type ProductTotal struct {
	ProductName string          `json:"product_name"`
	Total       decimal.Decimal `json:"total"`
}

type ClientTotal struct {
	ClientName string          `json:"client_name"`
	Total      decimal.Decimal `json:"total"`
}

type MonthTotal struct {
	Month string          `json:"month"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}

type StatsResponse struct {
	TopProducts  []ProductTotal `json:"top_products"`
	TopClients   []ClientTotal  `json:"top_clients"`
	MonthlyTrend []MonthTotal   `json:"monthly_trend"`
}

// ─── Async load list email ───────────────────────────────────────────────────

type EmailLoadListRequest struct {
	// Date defaults to today when blank.
	Date string `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	// Recipient overrides the configured default when set.
	Recipient string `json:"recipient" validate:"omitempty,email"`
}
