package services

import (
	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// InterfaceResidentService defines the resident service interface
type InterfaceResidentService interface {
	ListPending() ([]models.Resident, error)
	ListApproved() ([]models.Resident, error)
	GetByResidentID(residentID string) (*models.Resident, error)
	ApproveByResidentID(residentID string) error
}

// ResidentService provides admin-side resident management
type ResidentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewResidentService creates a new resident service
func NewResidentService(db *gorm.DB, cfg *config.Config) InterfaceResidentService {
	return &ResidentService{
		DB:     db,
		Config: cfg,
	}
}

// ListPending returns residents awaiting approval
func (s *ResidentService) ListPending() ([]models.Resident, error) {
	var residents []models.Resident
	if err := s.DB.Where("approved = ?", false).Find(&residents).Error; err != nil {
		return nil, storageError(err)
	}
	return residents, nil
}

// ListApproved returns approved residents
func (s *ResidentService) ListApproved() ([]models.Resident, error) {
	var residents []models.Resident
	if err := s.DB.Where("approved = ?", true).Find(&residents).Error; err != nil {
		return nil, storageError(err)
	}
	return residents, nil
}

// GetByResidentID fetches a resident by login token
func (s *ResidentService) GetByResidentID(residentID string) (*models.Resident, error) {
	var resident models.Resident
	if err := s.DB.Where("resident_id = ?", residentID).First(&resident).Error; err != nil {
		if isNotFound(err) {
			return nil, code.New(code.ErrResidentNotFound)
		}
		return nil, storageError(err)
	}
	return &resident, nil
}

// ApproveByResidentID flips approved to true. The transition is one-way;
// approving an already-approved resident is a no-op.
func (s *ResidentService) ApproveByResidentID(residentID string) error {
	result := s.DB.Model(&models.Resident{}).
		Where("resident_id = ?", residentID).
		Update("approved", true)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return code.New(code.ErrResidentNotFound)
	}
	return nil
}
