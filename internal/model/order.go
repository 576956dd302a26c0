package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unit type tags for order lines. Production is always counted in trays;
// orders may be entered in either unit.
const (
	UnitKilograms = "kg"
	UnitTray      = "unit"
)

// Order is the header of a client order for one delivery date.
// An order never persists without at least one line (enforced by the intake
// service, which only writes the header after line validation).
type Order struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date     string    `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time

	Client *Client     `gorm:"foreignKey:ClientID"`
	Lines  []OrderLine `gorm:"foreignKey:OrderID"`
}

// OrderLine is one product/quantity entry within an order, kept in the unit
// it was entered in. Normalization to trays happens on read via unit.ToTrays.
type OrderLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"` // > 0
	UnitType  string          `gorm:"type:varchar(8);not null"`    // kg | unit

	Product *Product `gorm:"foreignKey:ProductID"`
}
