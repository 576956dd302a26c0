package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// OrderLineInput is one candidate line as entered. Fields are deliberately
// untagged for validation: intake filters bad lines individually instead of
// rejecting the whole order, so line-level rules live in the service.
type OrderLineInput struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`  // comma decimal separator accepted
	UnitType  string `json:"unit_type"` // kg | unit
}

type CreateOrderRequest struct {
	ClientID string `json:"client_id" validate:"required,uuid"`
	// Date defaults to today when blank.
	Date  string           `json:"date"  validate:"omitempty,datetime=2006-01-02"`
	Lines []OrderLineInput `json:"lines" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// OrderSummary is one row of the order list: header data plus aggregates
// computed over the order's lines.
type OrderSummary struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	ClientName string          `json:"client_name"`
	ClientCode *string         `json:"client_code"`
	LineCount  int             `json:"line_count"`
	TotalKg    decimal.Decimal `json:"total_kg"`
}

// OrderLineDetail is one order line normalized to both units.
type OrderLineDetail struct {
	ProductName string          `json:"product_name"`
	ProductCode *string         `json:"product_code"`
	Kilograms   decimal.Decimal `json:"kilograms"`
	Trays       decimal.Decimal `json:"trays"`
}

type OrderDetailResponse struct {
	ID         string            `json:"id"`
	Date       string            `json:"date"`
	ClientName string            `json:"client_name"`
	ClientCode *string           `json:"client_code"`
	Lines      []OrderLineDetail `json:"lines"`
	TotalKg    decimal.Decimal   `json:"total_kg"`
	TotalTrays decimal.Decimal   `json:"total_trays"`
}

// OrderCreatedResponse reports what intake actually persisted, including how
// many candidate lines were discarded by validation.
type OrderCreatedResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	ClientID       string `json:"client_id"`
	LinesAccepted  int    `json:"lines_accepted"`
	LinesDiscarded int    `json:"lines_discarded"`
}
