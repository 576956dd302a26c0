package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a buyer of the producer's goods. Name is the business identity
// and must be unique; Code is an optional external label (e.g. the code the
// client uses in its own ERP).
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      *string
	Name      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders []Order `gorm:"foreignKey:ClientID"`
}
