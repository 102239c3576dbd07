package services

import (
	"time"

	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// amenities available for booking
var amenities = []string{"Clubhouse", "Tennis Court", "Gym"}

// InterfaceBookingService defines the amenity booking service interface
type InterfaceBookingService interface {
	Amenities() []string
	Book(session *Session, amenity string, date time.Time, timeSlot string) (*models.AmenityBooking, error)
	ListPending() ([]models.AmenityBooking, error)
	ListByResident(residentID string) ([]models.AmenityBooking, error)
	Decide(bookingID uint, approve bool) error
}

// BookingService manages amenity bookings and their one-shot decisions
type BookingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBookingService creates a new booking service
func NewBookingService(db *gorm.DB, cfg *config.Config) InterfaceBookingService {
	return &BookingService{
		DB:     db,
		Config: cfg,
	}
}

// Amenities returns the bookable amenities
func (s *BookingService) Amenities() []string {
	out := make([]string, len(amenities))
	copy(out, amenities)
	return out
}

// Book creates a pending booking. Dates before today are rejected; today is
// allowed.
func (s *BookingService) Book(session *Session, amenity string, date time.Time, timeSlot string) (*models.AmenityBooking, error) {
	if session == nil || session.Kind != SessionResident {
		return nil, code.New(code.ErrNotAuthorized)
	}
	if !validAmenity(amenity) {
		return nil, code.New(code.ErrUnknownAmenity)
	}
	if timeSlot == "" {
		return nil, code.New(code.ErrEmptyField)
	}
	if dateOnly(date).Before(today()) {
		return nil, code.New(code.ErrBookingDateInPast)
	}

	booking := &models.AmenityBooking{
		ResidentID: session.ResidentID,
		Amenity:    amenity,
		Date:       dateOnly(date),
		TimeSlot:   timeSlot,
		Status:     models.BookingStatusPending,
	}
	if err := s.DB.Create(booking).Error; err != nil {
		return nil, storageError(err)
	}
	return booking, nil
}

// ListPending returns bookings awaiting a decision
func (s *BookingService) ListPending() ([]models.AmenityBooking, error) {
	var bookings []models.AmenityBooking
	if err := s.DB.Where("status = ?", models.BookingStatusPending).Find(&bookings).Error; err != nil {
		return nil, storageError(err)
	}
	return bookings, nil
}

// ListByResident returns a resident's own bookings
func (s *BookingService) ListByResident(residentID string) ([]models.AmenityBooking, error) {
	var bookings []models.AmenityBooking
	if err := s.DB.Where("resident_id = ?", residentID).Find(&bookings).Error; err != nil {
		return nil, storageError(err)
	}
	return bookings, nil
}

// Decide approves or rejects a pending booking. The guarded update makes the
// decision one-shot even across concurrent admin sessions: re-deciding is a
// conflict, not a silent overwrite.
func (s *BookingService) Decide(bookingID uint, approve bool) error {
	status := models.BookingStatusRejected
	if approve {
		status = models.BookingStatusApproved
	}

	result := s.DB.Model(&models.AmenityBooking{}).
		Where("id = ? AND status = ?", bookingID, models.BookingStatusPending).
		Update("status", status)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.DB.Model(&models.AmenityBooking{}).Where("id = ?", bookingID).Count(&count).Error; err != nil {
			return storageError(err)
		}
		if count == 0 {
			return code.New(code.ErrBookingNotFound)
		}
		return code.New(code.ErrBookingAlreadyDecided)
	}
	return nil
}

func validAmenity(name string) bool {
	for _, a := range amenities {
		if a == name {
			return true
		}
	}
	return false
}
