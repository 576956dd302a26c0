package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecordProductionRequest struct {
	ProductID string `json:"product_id"     validate:"required,uuid"`
	// Date defaults to today when blank.
	Date string `json:"date"           validate:"omitempty,datetime=2006-01-02"`
	// TraysProduced must parse to a positive number (comma separator accepted).
	TraysProduced string `json:"trays_produced" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductionEntryResponse is one replenishment event with the derived
// kilogram equivalent (trays × the product's conversion factor).
type ProductionEntryResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	ProductName string          `json:"product_name"`
	ProductCode *string         `json:"product_code"`
	Trays       decimal.Decimal `json:"trays"`
	Kilograms   decimal.Decimal `json:"kilograms"`
}
