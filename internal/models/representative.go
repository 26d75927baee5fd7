package models

import "time"

// Representative is an entity that may attend and vote on behalf of
// shareholders. ShareholderID is set when the representative is itself a
// registered shareholder acting in that capacity.
type Representative struct {
	ID            string       `gorm:"primaryKey;size:64" json:"id"`
	Name          string       `gorm:"size:255;not null" json:"name"`
	Phone         *string      `gorm:"size:50" json:"phone,omitempty"`
	ShareholderID *string      `gorm:"size:64;index" json:"shareholder_id,omitempty"`
	Shareholder   *Shareholder `gorm:"foreignKey:ShareholderID" json:"shareholder,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Representation authorizes a representative to act for one shareholder at
// one specific meeting. Authority is never carried across meetings.
type Representation struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	MeetingID        string    `gorm:"size:36;not null;uniqueIndex:idx_representation_unique" json:"meeting_id"`
	RepresentativeID string    `gorm:"size:64;not null;uniqueIndex:idx_representation_unique" json:"representative_id"`
	ShareholderID    string    `gorm:"size:64;not null;uniqueIndex:idx_representation_unique" json:"shareholder_id"`
	CreatedAt        time.Time `json:"created_at"`
}
