package dto

import "github.com/shopspring/decimal"

// StockSnapshot is the derived per-product inventory view. It is recomputed
// from the ledgers on every read and never persisted or cached, so it is
// always a pure function of committed ledger state.
type StockSnapshot struct {
	ProductID   string  `json:"product_id"`
	ProductCode *string `json:"product_code"`
	ProductName string  `json:"product_name"`

	KgPerTray     decimal.Decimal `json:"kg_per_tray"`
	InitialTrays  decimal.Decimal `json:"initial_trays"`
	ProducedTrays decimal.Decimal `json:"produced_trays"`
	// OrderedTrays is the sum of all order lines normalized to tray units.
	OrderedTrays decimal.Decimal `json:"ordered_trays"`

	NetTrays     decimal.Decimal `json:"net_trays"`
	NetKilograms decimal.Decimal `json:"net_kilograms"`
}

// LoadListRow is one normalized order line of a given date, as consumed by
// the CSV export and the day documents: grouped by client, then product.
type LoadListRow struct {
	Date        string          `json:"date"`
	ClientName  string          `json:"client_name"`
	ClientCode  *string         `json:"client_code"`
	ProductName string          `json:"product_name"`
	ProductCode *string         `json:"product_code"`
	Trays       decimal.Decimal `json:"trays"`
	Kilograms   decimal.Decimal `json:"kilograms"`
}
