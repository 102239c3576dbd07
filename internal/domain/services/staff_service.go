package services

import (
	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// InterfaceStaffService defines the staff service interface
type InterfaceStaffService interface {
	ListPending() ([]models.Staff, error)
	ListAll() ([]models.Staff, error)
	GetByUsername(username string) (*models.Staff, error)
	ApproveByUsername(username string) error
}

// StaffService provides admin-side staff management
type StaffService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStaffService creates a new staff service
func NewStaffService(db *gorm.DB, cfg *config.Config) InterfaceStaffService {
	return &StaffService{
		DB:     db,
		Config: cfg,
	}
}

// ListPending returns staff accounts awaiting approval
func (s *StaffService) ListPending() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Where("approved = ?", false).Find(&staff).Error; err != nil {
		return nil, storageError(err)
	}
	return staff, nil
}

// ListAll returns every staff account
func (s *StaffService) ListAll() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Find(&staff).Error; err != nil {
		return nil, storageError(err)
	}
	return staff, nil
}

// GetByUsername fetches a staff member by username
func (s *StaffService) GetByUsername(username string) (*models.Staff, error) {
	var staff models.Staff
	if err := s.DB.Where("username = ?", username).First(&staff).Error; err != nil {
		if isNotFound(err) {
			return nil, code.New(code.ErrStaffNotFound)
		}
		return nil, storageError(err)
	}
	return &staff, nil
}

// ApproveByUsername flips approved to true; the role stays fixed.
func (s *StaffService) ApproveByUsername(username string) error {
	result := s.DB.Model(&models.Staff{}).
		Where("username = ?", username).
		Update("approved", true)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return code.New(code.ErrStaffNotFound)
	}
	return nil
}
