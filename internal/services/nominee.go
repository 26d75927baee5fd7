package services

import (
	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NomineeService struct {
	db *gorm.DB
}

func NewNomineeService(db *gorm.DB) *NomineeService {
	return &NomineeService{db: db}
}

type NomineeList struct {
	MeetingStatus models.MeetingStatus `json:"meeting_status"`
	Items         []models.Nominee     `json:"items"`
}

func (s *NomineeService) List(meetingID string) (*NomineeList, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}

	var items []models.Nominee
	if err := s.db.Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return &NomineeList{MeetingStatus: meeting.Status, Items: items}, nil
}

type NomineeInput struct {
	ShareholderID string
	Type          string
	Description   *string
}

func (s *NomineeService) Create(meetingID string, in NomineeInput) (*models.Nominee, error) {
	if in.ShareholderID == "" {
		return nil, validationError("shareholder id is required")
	}
	nomineeType := in.Type
	if nomineeType == "" {
		nomineeType = models.NomineeTypeFirst
	}
	if nomineeType != models.NomineeTypeFirst && nomineeType != models.NomineeTypeSecond {
		return nil, validationError("nominee type must be first or second")
	}

	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}
	if meeting.Status == models.MeetingStatusClosed {
		return nil, stateConflictError("cannot add nominee to closed meeting")
	}

	var shareholder models.Shareholder
	if err := s.db.First(&shareholder, "id = ?", in.ShareholderID).Error; err != nil {
		return nil, notFoundError("shareholder not found")
	}

	var existing models.Nominee
	if err := s.db.Where("meeting_id = ? AND shareholder_id = ?", meetingID, in.ShareholderID).
		First(&existing).Error; err == nil {
		return nil, stateConflictError("this shareholder is already nominated")
	}

	nominee := models.Nominee{
		ID:            uuid.NewString(),
		MeetingID:     meetingID,
		ShareholderID: shareholder.ID,
		Name:          shareholder.Name,
		NameAm:        shareholder.NameAm,
		Type:          nomineeType,
		Description:   in.Description,
	}
	if err := s.db.Create(&nominee).Error; err != nil {
		return nil, err
	}
	return &nominee, nil
}

type NomineeUpdate struct {
	Name        *string
	Type        *string
	Description *string
}

func (s *NomineeService) Update(meetingID, nomineeID string, in NomineeUpdate) (*models.Nominee, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return nil, notFoundError("meeting not found")
	}
	if meeting.Status == models.MeetingStatusClosed {
		return nil, stateConflictError("cannot edit nominee in closed meeting")
	}
	if meeting.Status == models.MeetingStatusVotingOpen {
		return nil, stateConflictError("cannot edit nominee while voting is open")
	}

	var nominee models.Nominee
	if err := s.db.Where("id = ? AND meeting_id = ?", nomineeID, meetingID).
		First(&nominee).Error; err != nil {
		return nil, notFoundError("nominee not found")
	}

	if in.Name != nil {
		nominee.Name = *in.Name
	}
	if in.Type != nil {
		if *in.Type != models.NomineeTypeFirst && *in.Type != models.NomineeTypeSecond {
			return nil, validationError("nominee type must be first or second")
		}
		nominee.Type = *in.Type
	}
	if in.Description != nil {
		nominee.Description = in.Description
	}

	if err := s.db.Save(&nominee).Error; err != nil {
		return nil, err
	}
	return &nominee, nil
}

func (s *NomineeService) Delete(meetingID, nomineeID string) error {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		return notFoundError("meeting not found")
	}
	if meeting.Status == models.MeetingStatusClosed {
		return stateConflictError("cannot delete nominee from closed meeting")
	}

	result := s.db.Where("id = ? AND meeting_id = ?", nomineeID, meetingID).
		Delete(&models.Nominee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundError("nominee not found")
	}
	return nil
}
