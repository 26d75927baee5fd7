package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceService struct {
	db       *gorm.DB
	meetings *MeetingService
}

func NewAttendanceService(db *gorm.DB, meetings *MeetingService) *AttendanceService {
	return &AttendanceService{db: db, meetings: meetings}
}

type AttendanceList struct {
	MeetingStatus models.MeetingStatus `json:"meeting_status"`
	QuorumPct     int                  `json:"quorum_pct"`
	Quorum        QuorumStatus         `json:"quorum"`
	Attendance    []models.Attendance  `json:"attendance"`
}

func (s *AttendanceService) List(meetingID string) (*AttendanceList, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}

	var attendance []models.Attendance
	if err := s.db.Where("meeting_id = ?", meetingID).
		Preload("RepresentedBy").
		Order("created_at ASC").
		Find(&attendance).Error; err != nil {
		return nil, err
	}

	quorum, err := s.meetings.EvaluateQuorum(s.db, &meeting)
	if err != nil {
		return nil, err
	}

	return &AttendanceList{
		MeetingStatus: meeting.Status,
		QuorumPct:     meeting.QuorumPct,
		Quorum:        *quorum,
		Attendance:    attendance,
	}, nil
}

type RecordAttendanceInput struct {
	ShareholderIDs []string
	// Representative resolution, tried in order: an existing representative
	// id, a shareholder acting as representative, or an external name with a
	// caller-supplied id.
	RepresentativeID            string
	RepresentativeShareholderID string
	RepresentativeName          string
}

type RecordAttendanceResult struct {
	Created []models.Attendance `json:"created"`
	Skipped []string            `json:"skipped"`
}

// Record checks in a batch of shareholders. The whole batch is validated
// against duplicates first so the caller can uncheck already-attended
// entries and retry; a recorded meeting in DRAFT auto-opens. Representation
// linkage happens after commit, best-effort.
func (s *AttendanceService) Record(meetingID string, in RecordAttendanceInput) (*RecordAttendanceResult, error) {
	if len(in.ShareholderIDs) == 0 {
		return nil, validationError("no shareholder ids provided")
	}

	result := &RecordAttendanceResult{Created: []models.Attendance{}, Skipped: []string{}}
	var representationLinks []models.Representation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var meeting models.Meeting
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&meeting, "id = ?", meetingID).Error; err != nil {
			return notFoundError("meeting not found")
		}
		if meeting.Status == models.MeetingStatusClosed {
			return stateConflictError("cannot modify attendance for closed meeting")
		}

		var already []models.Attendance
		if err := tx.Where("meeting_id = ? AND shareholder_id IN ?", meetingID, in.ShareholderIDs).
			Find(&already).Error; err != nil {
			return err
		}
		if len(already) > 0 {
			ids := make([]string, len(already))
			for i, a := range already {
				ids[i] = a.ShareholderID
			}
			return stateConflictError(fmt.Sprintf(
				"shareholders %s already in meeting, please uncheck them",
				strings.Join(ids, ", "),
			))
		}

		// First attendance against a draft meeting opens it.
		if meeting.Status == models.MeetingStatusDraft {
			meeting.Status = models.MeetingStatusOpen
			if err := tx.Save(&meeting).Error; err != nil {
				return err
			}
		}

		representativeID, err := s.resolveRepresentative(tx, in)
		if err != nil {
			return err
		}

		for _, shID := range in.ShareholderIDs {
			var existing models.Attendance
			if err := tx.Where("meeting_id = ? AND shareholder_id = ?", meetingID, shID).
				First(&existing).Error; err == nil {
				result.Skipped = append(result.Skipped, shID)
				continue
			}

			var sh models.Shareholder
			if err := tx.First(&sh, "id = ?", shID).Error; err != nil {
				return notFoundError("shareholder " + shID + " not found")
			}

			attendance := models.Attendance{
				ID:                uuid.NewString(),
				MeetingID:         meetingID,
				ShareholderID:     sh.ID,
				ShareholderName:   sh.Name,
				ShareholderNameAm: sh.NameAm,
				ShareValue:        sh.ShareValue,
			}
			if representativeID != "" {
				attendance.RepresentedByID = &representativeID
				if in.RepresentativeName != "" {
					name := in.RepresentativeName
					attendance.RepresentativeName = &name
				}
				representationLinks = append(representationLinks, models.Representation{
					ID:               uuid.NewString(),
					MeetingID:        meetingID,
					RepresentativeID: representativeID,
					ShareholderID:    sh.ID,
				})
			}

			if err := tx.Create(&attendance).Error; err != nil {
				return err
			}
			result.Created = append(result.Created, attendance)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Secondary bookkeeping for vote-weight aggregation. An existing triple
	// means the shareholder is already represented; anything else is logged
	// and never fails the recorded attendance.
	for _, link := range representationLinks {
		var existing models.Representation
		err := s.db.Where("meeting_id = ? AND representative_id = ? AND shareholder_id = ?",
			link.MeetingID, link.RepresentativeID, link.ShareholderID).
			First(&existing).Error
		if err == nil {
			continue
		}
		if err := s.db.Create(&link).Error; err != nil {
			log.Printf("attendance: failed to create representation for %s/%s: %v",
				link.RepresentativeID, link.ShareholderID, err)
		}
	}

	return result, nil
}

// resolveRepresentative maps the request's representative fields to a single
// representative id, creating Representative rows on demand.
func (s *AttendanceService) resolveRepresentative(tx *gorm.DB, in RecordAttendanceInput) (string, error) {
	representativeID := strings.TrimSpace(in.RepresentativeID)

	if representativeID == "" && in.RepresentativeShareholderID != "" {
		var sh models.Shareholder
		if err := tx.First(&sh, "id = ?", in.RepresentativeShareholderID).Error; err != nil {
			return "", notFoundError("representative shareholder not found")
		}

		// Reuse the representative already tied to this shareholder.
		var existing models.Representative
		if err := tx.Where("shareholder_id = ?", sh.ID).First(&existing).Error; err == nil {
			return existing.ID, nil
		}

		rep := models.Representative{
			ID:            uuid.NewString(),
			Name:          sh.Name,
			Phone:         sh.Phone,
			ShareholderID: &sh.ID,
		}
		if err := tx.Create(&rep).Error; err != nil {
			return "", err
		}
		return rep.ID, nil
	}

	// External representative: the caller supplies both id and name, and the
	// row is created the first time that id is seen. An id without a name
	// must already exist, or the attendance rows would dangle.
	if representativeID != "" {
		var existing models.Representative
		if err := tx.First(&existing, "id = ?", representativeID).Error; err != nil {
			if in.RepresentativeName == "" {
				return "", notFoundError("representative not found")
			}
			rep := models.Representative{
				ID:   representativeID,
				Name: in.RepresentativeName,
			}
			if err := tx.Create(&rep).Error; err != nil {
				return "", err
			}
		}
	}

	return representativeID, nil
}

// Delete removes one attendance row. The matching representation triple is
// cleaned up afterwards, best-effort; it is reconstructible from the
// remaining attendance data if the cleanup fails.
func (s *AttendanceService) Delete(meetingID, attendanceID string) error {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return notFoundError("meeting not found")
	}
	if meeting.Status == models.MeetingStatusClosed {
		return stateConflictError("cannot modify attendance for closed meeting")
	}

	var attendance models.Attendance
	if err := s.db.First(&attendance, "id = ?", attendanceID).Error; err != nil {
		return notFoundError("attendance not found")
	}
	if attendance.MeetingID != meetingID {
		return validationError("attendance does not belong to this meeting")
	}

	if err := s.db.Delete(&attendance).Error; err != nil {
		return err
	}

	if attendance.RepresentedByID != nil {
		err := s.db.Where("meeting_id = ? AND representative_id = ? AND shareholder_id = ?",
			meetingID, *attendance.RepresentedByID, attendance.ShareholderID).
			Delete(&models.Representation{}).Error
		if err != nil {
			log.Printf("attendance: failed to remove representation for %s/%s: %v",
				*attendance.RepresentedByID, attendance.ShareholderID, err)
		}
	}

	return nil
}
