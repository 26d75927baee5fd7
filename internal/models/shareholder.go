package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shareholder IDs are assigned by the share registrar, not generated here.
type Shareholder struct {
	ID         string          `gorm:"primaryKey;size:64" json:"id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	NameAm     string          `gorm:"size:255" json:"name_am"`
	Phone      *string         `gorm:"size:50" json:"phone,omitempty"`
	Address    *string         `gorm:"size:255" json:"address,omitempty"`
	ShareValue decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"share_value"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
