package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry for one perishable item. KgPerTray is the
// declared conversion factor between tray units and kilograms; it must be
// positive for the converter to be well-defined (a non-positive factor is a
// data-entry anomaly tolerated on the read path, see unit.ToTrays).
type Product struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code *string
	Name string `gorm:"uniqueIndex;not null"`
	// KgPerTray: kilograms represented by one tray of this product.
	KgPerTray decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	// InitialStockTrays seeds the ledger; default 0, negative only as an anomaly.
	InitialStockTrays decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
