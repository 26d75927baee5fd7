package services

import (
	"fmt"
	"time"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MeetingService struct {
	db           *gorm.DB
	shareholders *ShareholderService
}

func NewMeetingService(db *gorm.DB, shareholders *ShareholderService) *MeetingService {
	return &MeetingService{db: db, shareholders: shareholders}
}

type MeetingInput struct {
	Title         string
	Date          time.Time
	Location      string
	QuorumPct     int
	FirstPassers  int
	SecondPassers int
}

func (s *MeetingService) Create(in MeetingInput) (*models.Meeting, error) {
	if in.Title == "" || in.Location == "" {
		return nil, validationError("title and location are required")
	}
	if in.Date.IsZero() {
		return nil, validationError("date is required")
	}
	if in.QuorumPct < 0 || in.QuorumPct > 100 {
		return nil, validationError("quorum must be between 0 and 100")
	}

	meeting := models.Meeting{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Date:          in.Date,
		Location:      in.Location,
		QuorumPct:     in.QuorumPct,
		Status:        models.MeetingStatusDraft,
		FirstPassers:  in.FirstPassers,
		SecondPassers: in.SecondPassers,
	}
	if err := s.db.Create(&meeting).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

type MeetingPage struct {
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Take  int              `json:"take"`
	Items []models.Meeting `json:"items"`
}

func (s *MeetingService) List(q, status string, page, take int) (*MeetingPage, error) {
	if page < 1 {
		page = 1
	}
	if take < 1 {
		take = 10
	}
	if take > 100 {
		take = 100
	}

	query := s.db.Model(&models.Meeting{})
	if q != "" {
		query = query.Where("title LIKE ?", "%"+q+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Meeting
	if err := query.Order("date DESC").
		Offset((page - 1) * take).
		Limit(take).
		Find(&items).Error; err != nil {
		return nil, err
	}

	return &MeetingPage{Total: total, Page: page, Take: take, Items: items}, nil
}

type MeetingDetail struct {
	Meeting        models.Meeting  `json:"meeting"`
	TotalShares    decimal.Decimal `json:"total_shares"`
	AttendedShares decimal.Decimal `json:"attended_shares"`
	RequiredShares decimal.Decimal `json:"required_shares"`
	QuorumMet      bool            `json:"quorum_met"`
	NomineesCount  int64           `json:"nominees_count"`
}

func (s *MeetingService) Get(id string) (*MeetingDetail, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", id).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}

	quorum, err := s.EvaluateQuorum(s.db, &meeting)
	if err != nil {
		return nil, err
	}

	var nominees int64
	if err := s.db.Model(&models.Nominee{}).
		Where("meeting_id = ?", id).Count(&nominees).Error; err != nil {
		return nil, err
	}

	return &MeetingDetail{
		Meeting:        meeting,
		TotalShares:    quorum.TotalShares,
		AttendedShares: quorum.AttendedShares,
		RequiredShares: quorum.RequiredShares,
		QuorumMet:      quorum.QuorumMet,
		NomineesCount:  nominees,
	}, nil
}

type MeetingUpdate struct {
	Title         *string
	Date          *time.Time
	Location      *string
	QuorumPct     *int
	FirstPassers  *int
	SecondPassers *int
}

func (s *MeetingService) Update(id string, in MeetingUpdate) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", id).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}
	if meeting.Status == models.MeetingStatusClosed {
		return nil, stateConflictError("cannot edit closed meeting")
	}
	if meeting.Status == models.MeetingStatusVotingOpen {
		return nil, stateConflictError("cannot edit meeting while voting is open")
	}

	if in.QuorumPct != nil && (*in.QuorumPct < 0 || *in.QuorumPct > 100) {
		return nil, validationError("quorum must be between 0 and 100")
	}

	if in.Title != nil {
		meeting.Title = *in.Title
	}
	if in.Date != nil {
		meeting.Date = *in.Date
	}
	if in.Location != nil {
		meeting.Location = *in.Location
	}
	if in.QuorumPct != nil {
		meeting.QuorumPct = *in.QuorumPct
	}
	if in.FirstPassers != nil {
		meeting.FirstPassers = *in.FirstPassers
	}
	if in.SecondPassers != nil {
		meeting.SecondPassers = *in.SecondPassers
	}

	if err := s.db.Save(&meeting).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (s *MeetingService) Delete(id string) error {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", id).Error; err != nil {
		return notFoundError("meeting not found")
	}
	if meeting.Status != models.MeetingStatusDraft {
		return stateConflictError(fmt.Sprintf("cannot delete %s meeting", meeting.Status))
	}
	return s.db.Delete(&meeting).Error
}

// Open moves a draft meeting to OPEN so attendance can be recorded. The
// status check and flip run with the meeting row locked, so a racing close
// cannot be overwritten.
func (s *MeetingService) Open(id string) (*models.Meeting, error) {
	var meeting models.Meeting
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&meeting, "id = ?", id).Error; err != nil {
			return notFoundError("meeting not found")
		}

		switch meeting.Status {
		case models.MeetingStatusOpen:
			return stateConflictError("meeting already open")
		case models.MeetingStatusVotingOpen:
			return stateConflictError("voting already opened for this meeting")
		case models.MeetingStatusClosed:
			return stateConflictError("meeting already closed")
		}

		meeting.Status = models.MeetingStatusOpen
		return tx.Save(&meeting).Error
	})
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// OpenVoting moves an open meeting to VOTINGOPEN. It requires both passer
// thresholds and snapshots the registry totals onto the meeting so later
// registry edits do not skew this meeting's figures.
func (s *MeetingService) OpenVoting(id string) (*models.Meeting, error) {
	var meeting models.Meeting
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&meeting, "id = ?", id).Error; err != nil {
			return notFoundError("meeting not found")
		}

		switch meeting.Status {
		case models.MeetingStatusDraft:
			return stateConflictError("meeting is not open yet; open it before opening voting")
		case models.MeetingStatusVotingOpen:
			return stateConflictError("voting is already opened")
		case models.MeetingStatusClosed:
			return stateConflictError("meeting is already closed")
		}

		if meeting.FirstPassers == 0 || meeting.SecondPassers == 0 {
			return stateConflictError("first and second passers are not set for this meeting")
		}

		totalShares, err := s.shareholders.TotalShares(tx)
		if err != nil {
			return err
		}
		var totalHolders int64
		if err := tx.Model(&models.Shareholder{}).Count(&totalHolders).Error; err != nil {
			return err
		}

		meeting.Status = models.MeetingStatusVotingOpen
		meeting.SnapshotTotalShares = totalShares
		meeting.SnapshotTotalHolders = int(totalHolders)
		return tx.Save(&meeting).Error
	})
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Close ends the meeting. The quorum check and the status flip run in one
// transaction with the meeting row locked, so a concurrent attendance
// deletion cannot slip a quorum-failing meeting into CLOSED.
func (s *MeetingService) Close(id string) (*models.Meeting, error) {
	var meeting models.Meeting
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&meeting, "id = ?", id).Error; err != nil {
			return notFoundError("meeting not found")
		}

		if meeting.Status == models.MeetingStatusClosed {
			return stateConflictError("meeting already closed")
		}
		if !meeting.Status.CanTransition(models.MeetingStatusClosed) {
			return stateConflictError("meeting is not open")
		}

		quorum, err := s.EvaluateQuorum(tx, &meeting)
		if err != nil {
			return err
		}
		if !quorum.QuorumMet {
			return stateConflictError(fmt.Sprintf(
				"quorum not met: attended %s < required %s",
				quorum.AttendedShares.String(), quorum.RequiredShares.String(),
			))
		}

		meeting.Status = models.MeetingStatusClosed
		return tx.Save(&meeting).Error
	})
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

type QuorumStatus struct {
	TotalShares    decimal.Decimal `json:"total_shares"`
	AttendedShares decimal.Decimal `json:"attended_shares"`
	RequiredShares decimal.Decimal `json:"required_shares"`
	QuorumMet      bool            `json:"quorum_met"`
}

// EvaluateQuorum computes attended vs required shares for a meeting.
// Attended shares come from the attendance snapshots, never the live
// registry. Total shares come from the voting-open snapshot once one exists;
// the live fallback reads through tx so a locked caller sees one consistent
// registry state.
func (s *MeetingService) EvaluateQuorum(tx *gorm.DB, meeting *models.Meeting) (*QuorumStatus, error) {
	totalShares := meeting.SnapshotTotalShares
	if totalShares.IsZero() {
		var err error
		totalShares, err = s.shareholders.TotalShares(tx)
		if err != nil {
			return nil, err
		}
	}

	var attendances []models.Attendance
	if err := tx.Select("share_value").
		Where("meeting_id = ?", meeting.ID).
		Find(&attendances).Error; err != nil {
		return nil, err
	}

	attended := decimal.Zero
	for _, a := range attendances {
		attended = attended.Add(a.ShareValue)
	}

	required := totalShares.
		Mul(decimal.NewFromInt(int64(meeting.QuorumPct))).
		Div(decimal.NewFromInt(100))

	return &QuorumStatus{
		TotalShares:    totalShares,
		AttendedShares: attended,
		RequiredShares: required,
		QuorumMet:      attended.GreaterThanOrEqual(required),
	}, nil
}
