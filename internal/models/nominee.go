package models

import "time"

const (
	NomineeTypeFirst  = "first"
	NomineeTypeSecond = "second"
)

type Nominee struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	MeetingID     string    `gorm:"size:36;not null;uniqueIndex:idx_nominee_unique" json:"meeting_id"`
	ShareholderID string    `gorm:"size:64;not null;uniqueIndex:idx_nominee_unique" json:"shareholder_id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	NameAm        string    `gorm:"size:255" json:"name_am"`
	Type          string    `gorm:"size:10;not null;default:'first'" json:"type"`
	Description   *string   `gorm:"size:500" json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
