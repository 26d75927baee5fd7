package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vote records one voter's weighted vote for one nominee. Weight is stamped
// at submission time and never recomputed. The unique index is the storage
// backstop for the at-most-one-vote-per-(meeting, nominee, voter) rule; the
// voting service additionally pre-checks so resubmissions are reported as
// already voted instead of failing.
type Vote struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	MeetingID string          `gorm:"size:36;not null;uniqueIndex:idx_vote_unique" json:"meeting_id"`
	NomineeID string          `gorm:"size:36;not null;uniqueIndex:idx_vote_unique" json:"nominee_id"`
	VoterID   string          `gorm:"size:64;not null;uniqueIndex:idx_vote_unique" json:"voter_id"`
	Weight    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"weight"`
	CreatedAt time.Time       `json:"created_at"`
}
