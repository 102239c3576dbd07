package services

import (
	"time"

	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// RosterEntry is one flat due for delivery on a given day.
type RosterEntry struct {
	FlatNo string
	Name   string
}

// InterfaceDeliveryService defines the delivery service interface
type InterfaceDeliveryService interface {
	SkipDelivery(session *Session, flatNo, item string, skipDate time.Time) (*models.SkipDelivery, error)
	SkipsOn(date time.Time, item string) ([]string, error)
	DeliveryRoster(date time.Time, item string) ([]RosterEntry, error)
}

// DeliveryService manages delivery skips and the daily roster
type DeliveryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDeliveryService creates a new delivery service
func NewDeliveryService(db *gorm.DB, cfg *config.Config) InterfaceDeliveryService {
	return &DeliveryService{
		DB:     db,
		Config: cfg,
	}
}

// SkipDelivery records a skip for a future date. Today is not future, so the
// boundary day is rejected.
func (s *DeliveryService) SkipDelivery(session *Session, flatNo, item string, skipDate time.Time) (*models.SkipDelivery, error) {
	if session == nil || session.Kind != SessionResident {
		return nil, code.New(code.ErrNotAuthorized)
	}
	if flatNo != session.FlatNo {
		return nil, code.New(code.ErrFlatMismatch)
	}
	if item == "" {
		return nil, code.New(code.ErrEmptyField)
	}
	if !dateOnly(skipDate).After(today()) {
		return nil, code.New(code.ErrSkipDateNotFuture)
	}

	skip := &models.SkipDelivery{
		FlatNo:   flatNo,
		Item:     item,
		SkipDate: dateOnly(skipDate),
	}
	if err := s.DB.Create(skip).Error; err != nil {
		return nil, storageError(err)
	}
	return skip, nil
}

// SkipsOn returns the flats skipping an item on a date
func (s *DeliveryService) SkipsOn(date time.Time, item string) ([]string, error) {
	var flats []string
	err := s.DB.Model(&models.SkipDelivery{}).
		Where("skip_date = ? AND item = ?", dateOnly(date), item).
		Pluck("flat_no", &flats).Error
	if err != nil {
		return nil, storageError(err)
	}
	return flats, nil
}

// DeliveryRoster returns approved residents due for delivery on a date,
// excluding flats that skipped the item.
func (s *DeliveryService) DeliveryRoster(date time.Time, item string) ([]RosterEntry, error) {
	skipped, err := s.SkipsOn(date, item)
	if err != nil {
		return nil, err
	}
	skippedSet := make(map[string]bool, len(skipped))
	for _, flat := range skipped {
		skippedSet[flat] = true
	}

	var residents []models.Resident
	if err := s.DB.Where("approved = ?", true).Find(&residents).Error; err != nil {
		return nil, storageError(err)
	}

	var roster []RosterEntry
	for _, r := range residents {
		if !skippedSet[r.FlatNo] {
			roster = append(roster, RosterEntry{FlatNo: r.FlatNo, Name: r.Name})
		}
	}
	return roster, nil
}
