package services

import (
	"fmt"
	"strings"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShareholderService struct {
	db *gorm.DB
}

func NewShareholderService(db *gorm.DB) *ShareholderService {
	return &ShareholderService{db: db}
}

type ShareholderPage struct {
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Take        int                  `json:"take"`
	Items       []models.Shareholder `json:"items"`
	TotalShares decimal.Decimal      `json:"total_shares"`
}

func (s *ShareholderService) List(q string, page, take int) (*ShareholderPage, error) {
	if page < 1 {
		page = 1
	}
	if take < 1 {
		take = 10
	}
	if take > 100 {
		take = 100
	}

	query := s.db.Model(&models.Shareholder{})
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"id LIKE ? OR name LIKE ? OR name_am LIKE ? OR phone LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Shareholder
	if err := query.Order("name ASC").
		Offset((page - 1) * take).
		Limit(take).
		Find(&items).Error; err != nil {
		return nil, err
	}

	totalShares, err := s.TotalShares(s.db)
	if err != nil {
		return nil, err
	}

	return &ShareholderPage{
		Total:       total,
		Page:        page,
		Take:        take,
		Items:       items,
		TotalShares: totalShares,
	}, nil
}

func (s *ShareholderService) Get(id string) (*models.Shareholder, error) {
	var sh models.Shareholder
	if err := s.db.First(&sh, "id = ?", id).Error; err != nil {
		return nil, notFoundError("shareholder not found")
	}
	return &sh, nil
}

type ShareholderInput struct {
	ID         string
	Name       string
	NameAm     string
	Phone      *string
	Address    *string
	ShareValue decimal.Decimal
}

func (s *ShareholderService) Create(in ShareholderInput) (*models.Shareholder, error) {
	if in.ID == "" || in.Name == "" {
		return nil, validationError("id and name are required")
	}
	if in.ShareValue.IsNegative() {
		return nil, validationError("share value must not be negative")
	}

	var existing models.Shareholder
	if err := s.db.First(&existing, "id = ?", in.ID).Error; err == nil {
		return nil, stateConflictError("shareholder already exists")
	}

	sh := models.Shareholder{
		ID:         in.ID,
		Name:       in.Name,
		NameAm:     in.NameAm,
		Phone:      in.Phone,
		Address:    in.Address,
		ShareValue: in.ShareValue,
	}
	if err := s.db.Create(&sh).Error; err != nil {
		return nil, err
	}
	return &sh, nil
}

type ShareholderUpdate struct {
	Name       *string
	NameAm     *string
	Phone      *string
	Address    *string
	ShareValue *decimal.Decimal
}

func (s *ShareholderService) Update(id string, in ShareholderUpdate) (*models.Shareholder, error) {
	var sh models.Shareholder
	if err := s.db.First(&sh, "id = ?", id).Error; err != nil {
		return nil, notFoundError("shareholder not found")
	}

	if in.Name != nil {
		sh.Name = *in.Name
	}
	if in.NameAm != nil {
		sh.NameAm = *in.NameAm
	}
	if in.Phone != nil {
		sh.Phone = in.Phone
	}
	if in.Address != nil {
		sh.Address = in.Address
	}
	if in.ShareValue != nil {
		if in.ShareValue.IsNegative() {
			return nil, validationError("share value must not be negative")
		}
		sh.ShareValue = *in.ShareValue
	}

	if err := s.db.Save(&sh).Error; err != nil {
		return nil, err
	}
	return &sh, nil
}

// Delete removes a shareholder only when it has no attendance or vote
// history; past meetings must keep their referenced rows intact.
func (s *ShareholderService) Delete(id string) error {
	var sh models.Shareholder
	if err := s.db.First(&sh, "id = ?", id).Error; err != nil {
		return notFoundError("shareholder not found")
	}

	var attendances int64
	if err := s.db.Model(&models.Attendance{}).
		Where("shareholder_id = ?", id).Count(&attendances).Error; err != nil {
		return err
	}
	var votes int64
	if err := s.db.Model(&models.Vote{}).
		Where("voter_id = ?", id).Count(&votes).Error; err != nil {
		return err
	}
	if attendances > 0 || votes > 0 {
		return stateConflictError("shareholder has attendance or vote history and cannot be deleted")
	}

	return s.db.Delete(&sh).Error
}

// BulkCreate inserts a batch of registrar rows. The batch is all-or-nothing:
// any id already registered rejects the whole upload, naming the holders.
func (s *ShareholderService) BulkCreate(rows []ShareholderInput) (int, error) {
	if len(rows) == 0 {
		return 0, validationError("no shareholder data found")
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.ID == "" || r.Name == "" {
			return 0, validationError("every row needs an id and a name")
		}
		if r.ShareValue.IsNegative() {
			return 0, validationError(fmt.Sprintf("share value for %s must not be negative", r.ID))
		}
		ids = append(ids, r.ID)
	}

	var existing []models.Shareholder
	if err := s.db.Select("id", "name").Where("id IN ?", ids).Find(&existing).Error; err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		names := make([]string, len(existing))
		for i, e := range existing {
			names[i] = e.Name
		}
		return 0, stateConflictError("shareholder/s already exists: " + strings.Join(names, ", "))
	}

	shareholders := make([]models.Shareholder, len(rows))
	for i, r := range rows {
		shareholders[i] = models.Shareholder{
			ID:         r.ID,
			Name:       r.Name,
			NameAm:     r.NameAm,
			Phone:      r.Phone,
			Address:    r.Address,
			ShareValue: r.ShareValue,
		}
	}
	if err := s.db.Create(&shareholders).Error; err != nil {
		return 0, err
	}
	return len(shareholders), nil
}

// TotalShares sums the live registry on the given handle, so callers inside
// a transaction see the same registry state they will commit against.
// Meetings with voting open use their own snapshot instead.
func (s *ShareholderService) TotalShares(tx *gorm.DB) (decimal.Decimal, error) {
	var shareholders []models.Shareholder
	if err := tx.Select("share_value").Find(&shareholders).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, sh := range shareholders {
		total = total.Add(sh.ShareValue)
	}
	return total, nil
}

func (s *ShareholderService) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Shareholder{}).Count(&n).Error
	return n, err
}
