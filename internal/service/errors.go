package service

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Domain error taxonomy. Handlers map these onto HTTP statuses with
// errors.Is; services wrap them with %w to add detail without losing the
// classification. Every write path returning one of these leaves the store
// untouched.
var (
	// ErrValidation — rejected user input; nothing was written.
	ErrValidation = errors.New("dati non validi")
	// ErrDuplicateName — unique-name violation on client or product.
	ErrDuplicateName = errors.New("nome già esistente")
	// ErrReferentialConflict — delete blocked by dependent records.
	ErrReferentialConflict = errors.New("eliminazione bloccata: esistono record collegati")
	// ErrNotFound — lookup by id missed.
	ErrNotFound = errors.New("record non trovato")
)

// parseQuantity parses a user-entered number, accepting the comma decimal
// separator used on Italian data-entry forms ("2,5" → 2.5).
func parseQuantity(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return decimal.NewFromString(s)
}
