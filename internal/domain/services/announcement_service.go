package services

import (
	"strings"

	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// InterfaceAnnouncementService defines the announcement service interface
type InterfaceAnnouncementService interface {
	Post(message string) (*models.Announcement, error)
	List() ([]models.Announcement, error)
	ListRecent(n int) ([]models.Announcement, error)
	Delete(id uint) error
}

// AnnouncementService manages admin notices
type AnnouncementService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(db *gorm.DB, cfg *config.Config) InterfaceAnnouncementService {
	return &AnnouncementService{
		DB:     db,
		Config: cfg,
	}
}

// Post publishes an announcement
func (s *AnnouncementService) Post(message string) (*models.Announcement, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, code.New(code.ErrEmptyField)
	}

	announcement := &models.Announcement{Message: message}
	if err := s.DB.Create(announcement).Error; err != nil {
		return nil, storageError(err)
	}
	return announcement, nil
}

// List returns all announcements, newest first
func (s *AnnouncementService) List() ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := s.DB.Order("created_at DESC").Find(&announcements).Error; err != nil {
		return nil, storageError(err)
	}
	return announcements, nil
}

// ListRecent returns the n newest announcements
func (s *AnnouncementService) ListRecent(n int) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := s.DB.Order("created_at DESC").Limit(n).Find(&announcements).Error; err != nil {
		return nil, storageError(err)
	}
	return announcements, nil
}

// Delete removes an announcement by id
func (s *AnnouncementService) Delete(id uint) error {
	result := s.DB.Delete(&models.Announcement{}, id)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return code.New(code.ErrAnnouncementNotFound)
	}
	return nil
}
