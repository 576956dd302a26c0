package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Numeric fields arrive as strings so the intake can accept the comma decimal
// separator used on data-entry forms ("2,5" → 2.5); parsing failures are
// validation errors, never zero values.

type CreateProductRequest struct {
	Code *string `json:"code"`
	Name string  `json:"name"          validate:"required,min=1,max=120"`
	// KgPerTray must parse to a positive number.
	KgPerTray string `json:"kg_per_tray"  validate:"required"`
	// InitialStockTrays defaults to 0 when blank.
	InitialStockTrays string `json:"initial_stock_trays"`
}

type UpdateProductRequest struct {
	Code              *string `json:"code"`
	Name              *string `json:"name"        validate:"omitempty,min=1,max=120"`
	KgPerTray         *string `json:"kg_per_tray"`
	InitialStockTrays *string `json:"initial_stock_trays"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID                string          `json:"id"`
	Code              *string         `json:"code"`
	Name              string          `json:"name"`
	KgPerTray         decimal.Decimal `json:"kg_per_tray"`
	InitialStockTrays decimal.Decimal `json:"initial_stock_trays"`
}
