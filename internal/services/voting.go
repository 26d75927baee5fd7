package services

import (
	"strings"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VotingService struct {
	db *gorm.DB
}

func NewVotingService(db *gorm.DB) *VotingService {
	return &VotingService{db: db}
}

// VoterIdentity is resolved once per request: a voter id belongs either to a
// representative or to a shareholder. Representative lookup wins, matching
// how attendance links are keyed.
type VoterIdentity struct {
	Representative *models.Representative
	Shareholder    *models.Shareholder
}

func (s *VotingService) resolveVoter(tx *gorm.DB, voterID string) (*VoterIdentity, error) {
	var rep models.Representative
	if err := tx.First(&rep, "id = ?", voterID).Error; err == nil {
		return &VoterIdentity{Representative: &rep}, nil
	}

	var sh models.Shareholder
	if err := tx.First(&sh, "id = ?", voterID).Error; err == nil {
		return &VoterIdentity{Shareholder: &sh}, nil
	}

	return nil, notFoundError("voter not found")
}

// resolveWeight determines eligibility and the share weight the voter may
// cast in this meeting. All weight components come from attendance
// snapshots, so a vote's value is unaffected by later registry edits.
//
// A representative's own back-referenced shareholder contributes its shares
// only when that shareholder actually attended; an unattended back-reference
// is not counted.
func (s *VotingService) resolveWeight(tx *gorm.DB, meetingID string, voter *VoterIdentity) (decimal.Decimal, error) {
	if voter.Representative != nil {
		rep := voter.Representative
		weight := decimal.Zero
		eligible := false

		var represented []models.Attendance
		if err := tx.Where(
			"meeting_id = ? AND (represented_by_id = ? OR representative_name = ?)",
			meetingID, rep.ID, rep.Name,
		).Find(&represented).Error; err != nil {
			return decimal.Zero, err
		}
		if len(represented) > 0 {
			eligible = true
		}

		if rep.ShareholderID != nil {
			var own models.Attendance
			err := tx.Where("meeting_id = ? AND shareholder_id = ?", meetingID, *rep.ShareholderID).
				First(&own).Error
			if err == nil {
				eligible = true
				weight = weight.Add(own.ShareValue)
			}
		}

		var links []models.Representation
		if err := tx.Where("meeting_id = ? AND representative_id = ?", meetingID, rep.ID).
			Find(&links).Error; err != nil {
			return decimal.Zero, err
		}
		if len(links) > 0 {
			ids := make([]string, len(links))
			for i, l := range links {
				ids[i] = l.ShareholderID
			}
			var attendances []models.Attendance
			if err := tx.Where("meeting_id = ? AND shareholder_id IN ?", meetingID, ids).
				Find(&attendances).Error; err != nil {
				return decimal.Zero, err
			}
			for _, a := range attendances {
				weight = weight.Add(a.ShareValue)
			}
		}

		if !eligible {
			return decimal.Zero, eligibilityError("voter did not attend this meeting and cannot vote")
		}
		return weight, nil
	}

	var attendance models.Attendance
	err := tx.Where("meeting_id = ? AND shareholder_id = ?", meetingID, voter.Shareholder.ID).
		First(&attendance).Error
	if err != nil {
		return decimal.Zero, eligibilityError("voter did not attend this meeting and cannot vote")
	}
	return attendance.ShareValue, nil
}

type SubmitVotesResult struct {
	Created []models.Vote `json:"created"`
	Already []string      `json:"already"`
}

// Submit records one vote per requested nominee, stamped with the voter's
// resolved weight. Nominees already voted by this voter are reported in
// Already and left untouched. The check-then-create sequence runs in one
// transaction with the meeting row locked, so two concurrent submissions
// cannot double-credit a nominee.
func (s *VotingService) Submit(meetingID, voterID string, nomineeIDs []string) (*SubmitVotesResult, error) {
	if strings.TrimSpace(voterID) == "" {
		return nil, validationError("voter id is required")
	}
	if len(nomineeIDs) == 0 {
		return nil, validationError("no nominee ids provided")
	}

	result := &SubmitVotesResult{Created: []models.Vote{}, Already: []string{}}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var meeting models.Meeting
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&meeting, "id = ?", meetingID).Error; err != nil {
			return notFoundError("meeting not found")
		}
		if meeting.Status != models.MeetingStatusOpen && meeting.Status != models.MeetingStatusVotingOpen {
			return stateConflictError("meeting not open for voting")
		}

		var nominees []models.Nominee
		if err := tx.Where("id IN ? AND meeting_id = ?", nomineeIDs, meetingID).
			Find(&nominees).Error; err != nil {
			return err
		}
		if len(nominees) != len(uniqueStrings(nomineeIDs)) {
			return notFoundError("one or more nominees not found in this meeting")
		}

		voter, err := s.resolveVoter(tx, voterID)
		if err != nil {
			return err
		}
		weight, err := s.resolveWeight(tx, meetingID, voter)
		if err != nil {
			return err
		}
		if !weight.IsPositive() {
			return validationError("vote weight is zero; cannot submit vote")
		}

		var existing []models.Vote
		if err := tx.Where("meeting_id = ? AND voter_id = ? AND nominee_id IN ?",
			meetingID, voterID, nomineeIDs).Find(&existing).Error; err != nil {
			return err
		}
		alreadyVoted := make(map[string]bool, len(existing))
		for _, v := range existing {
			alreadyVoted[v.NomineeID] = true
			result.Already = append(result.Already, v.NomineeID)
		}

		for _, nomineeID := range uniqueStrings(nomineeIDs) {
			if alreadyVoted[nomineeID] {
				continue
			}
			vote := models.Vote{
				ID:        uuid.NewString(),
				MeetingID: meetingID,
				NomineeID: nomineeID,
				VoterID:   voterID,
				Weight:    weight,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			result.Created = append(result.Created, vote)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type VoterVotes struct {
	MeetingStatus models.MeetingStatus `json:"meeting_status"`
	VoterID       string               `json:"voter_id"`
	Voted         []string             `json:"voted"`
	VoterWeight   decimal.Decimal      `json:"voter_weight"`
}

// Votes returns the nominees a voter has already voted for and the total
// weight recorded, so clients can disable already-voted entries.
func (s *VotingService) Votes(meetingID, voterID string) (*VoterVotes, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}

	var votes []models.Vote
	if err := s.db.Where("meeting_id = ? AND voter_id = ?", meetingID, voterID).
		Find(&votes).Error; err != nil {
		return nil, err
	}

	voted := make([]string, len(votes))
	totalWeight := decimal.Zero
	for i, v := range votes {
		voted[i] = v.NomineeID
		totalWeight = totalWeight.Add(v.Weight)
	}

	return &VoterVotes{
		MeetingStatus: meeting.Status,
		VoterID:       voterID,
		Voted:         voted,
		VoterWeight:   totalWeight,
	}, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
