package services

import (
	"sort"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ResultsService struct {
	db *gorm.DB
}

func NewResultsService(db *gorm.DB) *ResultsService {
	return &ResultsService{db: db}
}

type NomineeResult struct {
	NomineeID   string          `json:"nominee_id"`
	Name        string          `json:"name"`
	NameAm      string          `json:"name_am"`
	Type        string          `json:"type"`
	Description *string         `json:"description,omitempty"`
	TotalWeight decimal.Decimal `json:"total_weight"`
	Passer      bool            `json:"passer"`
}

type VoteResults struct {
	MeetingStatus       models.MeetingStatus `json:"meeting_status"`
	FirstPassers        int                  `json:"meeting_first_passers"`
	SecondPassers       int                  `json:"meeting_second_passers"`
	Results             []NomineeResult      `json:"results"`
	TotalSharesAttended decimal.Decimal      `json:"total_shares_attended"`
}

// Aggregate sums recorded vote weight per nominee, ordered by weight
// descending. Nominees with equal weight keep their nomination order; the
// aggregation walks nominees in creation order and the sort is stable.
func (s *ResultsService) Aggregate(meetingID string) (*VoteResults, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}

	var nominees []models.Nominee
	if err := s.db.Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&nominees).Error; err != nil {
		return nil, err
	}

	var votes []models.Vote
	if err := s.db.Where("meeting_id = ?", meetingID).Find(&votes).Error; err != nil {
		return nil, err
	}
	weightByNominee := make(map[string]decimal.Decimal, len(nominees))
	for _, v := range votes {
		weightByNominee[v.NomineeID] = weightByNominee[v.NomineeID].Add(v.Weight)
	}

	var attendances []models.Attendance
	if err := s.db.Select("share_value").
		Where("meeting_id = ?", meetingID).
		Find(&attendances).Error; err != nil {
		return nil, err
	}
	attendedShares := decimal.Zero
	for _, a := range attendances {
		attendedShares = attendedShares.Add(a.ShareValue)
	}

	results := make([]NomineeResult, len(nominees))
	for i, n := range nominees {
		results[i] = NomineeResult{
			NomineeID:   n.ID,
			Name:        n.Name,
			NameAm:      n.NameAm,
			Type:        n.Type,
			Description: n.Description,
			TotalWeight: weightByNominee[n.ID],
		}
	}
	sortByWeightDesc(results)

	return &VoteResults{
		MeetingStatus:       meeting.Status,
		FirstPassers:        meeting.FirstPassers,
		SecondPassers:       meeting.SecondPassers,
		Results:             results,
		TotalSharesAttended: attendedShares,
	}, nil
}

// Ranked applies the seat rule: the top firstPassers of type "first" and the
// top secondPassers of type "second" pass, listed first by weight; every
// remaining nominee follows, also by weight, regardless of type.
func (s *ResultsService) Ranked(meetingID string) (*VoteResults, error) {
	aggregated, err := s.Aggregate(meetingID)
	if err != nil {
		return nil, err
	}

	var firstGroup, secondGroup []NomineeResult
	for _, r := range aggregated.Results {
		switch r.Type {
		case models.NomineeTypeFirst:
			firstGroup = append(firstGroup, r)
		case models.NomineeTypeSecond:
			secondGroup = append(secondGroup, r)
		}
	}

	passers := make([]NomineeResult, 0, aggregated.FirstPassers+aggregated.SecondPassers)
	passers = append(passers, takeTop(firstGroup, aggregated.FirstPassers)...)
	passers = append(passers, takeTop(secondGroup, aggregated.SecondPassers)...)
	sortByWeightDesc(passers)

	passing := make(map[string]bool, len(passers))
	for i := range passers {
		passers[i].Passer = true
		passing[passers[i].NomineeID] = true
	}

	var remaining []NomineeResult
	for _, r := range aggregated.Results {
		if !passing[r.NomineeID] {
			remaining = append(remaining, r)
		}
	}

	aggregated.Results = append(passers, remaining...)
	return aggregated, nil
}

// sortByWeightDesc is stable so equal weights keep nomination order.
func sortByWeightDesc(results []NomineeResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalWeight.GreaterThan(results[j].TotalWeight)
	})
}

func takeTop(group []NomineeResult, n int) []NomineeResult {
	if n > len(group) {
		n = len(group)
	}
	return group[:n]
}
