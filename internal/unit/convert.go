// Package unit holds the tray↔kilogram conversion every quantity-bearing
// code path goes through. Both functions are pure; the stock calculator,
// the exports and the printable checklists all normalize through here so
// a quantity can never be converted two different ways.
package unit

import (
	"github.com/shopspring/decimal"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/model"
)

// ToTrays normalizes an entered quantity to tray units using the product's
// conversion factor (kg per tray).
//
// A kg-typed quantity against a non-positive factor converts to zero instead
// of failing, so one malformed product record cannot abort a whole snapshot
// read.
func ToTrays(quantity decimal.Decimal, unitType string, kgPerTray decimal.Decimal) decimal.Decimal {
	if unitType == model.UnitKilograms {
		if kgPerTray.Sign() <= 0 {
			return decimal.Zero
		}
		return quantity.Div(kgPerTray)
	}
	return quantity
}

// ToKilograms converts a tray count back to kilograms.
func ToKilograms(trays, kgPerTray decimal.Decimal) decimal.Decimal {
	return trays.Mul(kgPerTray)
}
