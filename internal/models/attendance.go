package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance marks a shareholder present at a meeting. Name and share value
// are snapshotted at check-in so later registry edits do not rewrite a past
// meeting's attendance or quorum figures.
type Attendance struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	MeetingID     string `gorm:"size:36;not null;uniqueIndex:idx_attendance_unique" json:"meeting_id"`
	ShareholderID string `gorm:"size:64;not null;uniqueIndex:idx_attendance_unique" json:"shareholder_id"`

	// Snapshot fields, copied from the registry at check-in and never refreshed.
	ShareholderName   string          `gorm:"size:255;not null" json:"shareholder_name"`
	ShareholderNameAm string          `gorm:"size:255" json:"shareholder_name_am"`
	ShareValue        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"share_value"`

	// Null RepresentedByID means the shareholder attends in person.
	RepresentedByID    *string         `gorm:"size:64;index" json:"represented_by_id,omitempty"`
	RepresentedBy      *Representative `gorm:"foreignKey:RepresentedByID" json:"represented_by,omitempty"`
	RepresentativeName *string         `gorm:"size:255" json:"representative_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
