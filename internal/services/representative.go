package services

import (
	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RepresentativeService struct {
	db *gorm.DB
}

func NewRepresentativeService(db *gorm.DB) *RepresentativeService {
	return &RepresentativeService{db: db}
}

func (s *RepresentativeService) List() ([]models.Representative, error) {
	var items []models.Representative
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type RepresentativeInput struct {
	Name          string
	Phone         *string
	ShareholderID *string
}

func (s *RepresentativeService) Create(in RepresentativeInput) (*models.Representative, error) {
	if in.Name == "" {
		return nil, validationError("name is required")
	}
	if in.ShareholderID != nil {
		var sh models.Shareholder
		if err := s.db.First(&sh, "id = ?", *in.ShareholderID).Error; err != nil {
			return nil, notFoundError("shareholder not found")
		}
	}

	rep := models.Representative{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Phone:         in.Phone,
		ShareholderID: in.ShareholderID,
	}
	if err := s.db.Create(&rep).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}
