package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MeetingStatus string

const (
	MeetingStatusDraft      MeetingStatus = "DRAFT"
	MeetingStatusOpen       MeetingStatus = "OPEN"
	MeetingStatusVotingOpen MeetingStatus = "VOTINGOPEN"
	MeetingStatusClosed     MeetingStatus = "CLOSED"
)

// meetingTransitions is the single source of truth for the lifecycle.
// Every transition is one-directional; no status is re-enterable.
var meetingTransitions = map[MeetingStatus][]MeetingStatus{
	MeetingStatusDraft:      {MeetingStatusOpen},
	MeetingStatusOpen:       {MeetingStatusVotingOpen, MeetingStatusClosed},
	MeetingStatusVotingOpen: {MeetingStatusClosed},
	MeetingStatusClosed:     {},
}

func (s MeetingStatus) CanTransition(to MeetingStatus) bool {
	for _, next := range meetingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingStatusDraft, MeetingStatusOpen, MeetingStatusVotingOpen, MeetingStatusClosed:
		return true
	}
	return false
}

type Meeting struct {
	ID           string        `gorm:"primaryKey;size:36" json:"id"`
	Title        string        `gorm:"size:255;not null" json:"title"`
	Date         time.Time     `gorm:"not null;index" json:"date"`
	Location     string        `gorm:"size:255" json:"location"`
	QuorumPct    int           `gorm:"not null;default:0" json:"quorum_pct"`
	Status       MeetingStatus `gorm:"size:20;not null;default:'DRAFT'" json:"status"`
	FirstPassers int           `gorm:"not null;default:0" json:"first_passers"`
	SecondPassers int          `gorm:"not null;default:0" json:"second_passers"`

	// Registry totals captured when voting opens, so quorum and attendance
	// percentages stay correct for this meeting even if the registry changes.
	SnapshotTotalShares  decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"snapshot_total_shares"`
	SnapshotTotalHolders int             `gorm:"not null;default:0" json:"snapshot_total_holders"`

	Attendances []Attendance `gorm:"foreignKey:MeetingID" json:"attendances,omitempty"`
	Nominees    []Nominee    `gorm:"foreignKey:MeetingID" json:"nominees,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
