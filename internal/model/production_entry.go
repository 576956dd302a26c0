package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionEntry records one replenishment event. Production is always
// measured in tray units, never kilograms.
type ProductionEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date          string          `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TraysProduced decimal.Decimal `gorm:"type:decimal(12,2);not null"` // > 0
	CreatedAt     time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName overrides GORM's default pluralization (production_entrys → production_entries).
func (ProductionEntry) TableName() string { return "production_entries" }
