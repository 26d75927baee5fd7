package services

import (
	"time"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportService struct {
	db           *gorm.DB
	shareholders *ShareholderService
}

func NewReportService(db *gorm.DB, shareholders *ShareholderService) *ReportService {
	return &ReportService{db: db, shareholders: shareholders}
}

type CardEntry struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ShareValue decimal.Decimal `json:"share_value"`
}

type MeetingHeader struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type VotingCards struct {
	Meeting     MeetingHeader   `json:"meeting"`
	Attendees   []CardEntry     `json:"attendees"`
	Nominees    []CardEntry     `json:"nominees"`
	TotalShares decimal.Decimal `json:"total_shares"`
}

// VotingCards collects the data printed on physical ballot cards: who is in
// the room, who stands for election, and the registry total. Attendee share
// values come from the check-in snapshots.
func (s *ReportService) VotingCards(meetingID string) (*VotingCards, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}

	var attendances []models.Attendance
	if err := s.db.Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&attendances).Error; err != nil {
		return nil, err
	}
	attendees := make([]CardEntry, len(attendances))
	for i, a := range attendances {
		attendees[i] = CardEntry{
			ID:         a.ShareholderID,
			Name:       a.ShareholderName,
			ShareValue: a.ShareValue,
		}
	}

	var nomineeRows []models.Nominee
	if err := s.db.Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&nomineeRows).Error; err != nil {
		return nil, err
	}
	nominees := make([]CardEntry, len(nomineeRows))
	for i, n := range nomineeRows {
		var sh models.Shareholder
		value := decimal.Zero
		if err := s.db.First(&sh, "id = ?", n.ShareholderID).Error; err == nil {
			value = sh.ShareValue
		}
		nominees[i] = CardEntry{ID: n.ShareholderID, Name: n.Name, ShareValue: value}
	}

	totalShares := meeting.SnapshotTotalShares
	if totalShares.IsZero() {
		var err error
		totalShares, err = s.shareholders.TotalShares(s.db)
		if err != nil {
			return nil, err
		}
	}

	return &VotingCards{
		Meeting:     MeetingHeader{ID: meeting.ID, Title: meeting.Title, Date: meeting.Date},
		Attendees:   attendees,
		Nominees:    nominees,
		TotalShares: totalShares,
	}, nil
}
