package services

import (
	"time"

	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// InterfaceComplaintService defines the complaint service interface
type InterfaceComplaintService interface {
	Raise(session *Session, flatNo, category, description string, date time.Time) (*models.Complaint, error)
	ListByFlat(flatNo string) ([]models.Complaint, error)
	ListByDate(date time.Time) ([]models.Complaint, error)
	ListAll() ([]models.Complaint, error)
	UpdateStatus(id uint, status string) error
	UpdateStatusByFlatAndDate(flatNo string, date time.Time, status string) (*models.Complaint, error)
	Assign(complaintID uint, staffUsername string, dueDate time.Time) (*models.MaintenanceTask, error)
}

// ComplaintService implements the complaint lifecycle: Pending -> Assigned ->
// In Progress -> Resolved.
type ComplaintService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewComplaintService creates a new complaint service
func NewComplaintService(db *gorm.DB, cfg *config.Config) InterfaceComplaintService {
	return &ComplaintService{
		DB:     db,
		Config: cfg,
	}
}

// Raise files a complaint. The flat number must match the session and the
// complaint date must be today; both are rejected before any write.
func (s *ComplaintService) Raise(session *Session, flatNo, category, description string, date time.Time) (*models.Complaint, error) {
	if session == nil || session.Kind != SessionResident {
		return nil, code.New(code.ErrNotAuthorized)
	}
	if flatNo != session.FlatNo {
		return nil, code.New(code.ErrFlatMismatch)
	}
	if category == "" || description == "" {
		return nil, code.New(code.ErrEmptyField)
	}
	if !dateOnly(date).Equal(today()) {
		return nil, code.New(code.ErrComplaintDateNotToday)
	}

	complaint := &models.Complaint{
		FlatNo:      flatNo,
		Category:    category,
		Description: description,
		Date:        dateOnly(date),
		Status:      models.ComplaintStatusPending,
	}
	if err := s.DB.Create(complaint).Error; err != nil {
		return nil, storageError(err)
	}
	return complaint, nil
}

// ListByFlat returns all complaints raised from a flat
func (s *ComplaintService) ListByFlat(flatNo string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Where("flat_no = ?", flatNo).Find(&complaints).Error; err != nil {
		return nil, storageError(err)
	}
	return complaints, nil
}

// ListByDate returns complaints filed on a given date
func (s *ComplaintService) ListByDate(date time.Time) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Where("date = ?", dateOnly(date)).Find(&complaints).Error; err != nil {
		return nil, storageError(err)
	}
	return complaints, nil
}

// ListAll returns every complaint
func (s *ComplaintService) ListAll() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Find(&complaints).Error; err != nil {
		return nil, storageError(err)
	}
	return complaints, nil
}

// UpdateStatus sets a complaint's status to one of the enumerated values
func (s *ComplaintService) UpdateStatus(id uint, status string) error {
	if !models.ValidComplaintStatus(status) {
		return code.New(code.ErrInvalidComplaintStatus)
	}
	result := s.DB.Model(&models.Complaint{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return code.New(code.ErrComplaintNotFound)
	}
	return nil
}

// UpdateStatusByFlatAndDate updates the first complaint matching flat and
// date; the maintenance staff flow identifies complaints this way.
func (s *ComplaintService) UpdateStatusByFlatAndDate(flatNo string, date time.Time, status string) (*models.Complaint, error) {
	if !models.ValidComplaintStatus(status) {
		return nil, code.New(code.ErrInvalidComplaintStatus)
	}

	var complaint models.Complaint
	err := s.DB.Where("flat_no = ? AND date = ?", flatNo, dateOnly(date)).First(&complaint).Error
	if err != nil {
		if isNotFound(err) {
			return nil, code.New(code.ErrComplaintNotFound)
		}
		return nil, storageError(err)
	}

	if err := s.DB.Model(&complaint).Update("status", status).Error; err != nil {
		return nil, storageError(err)
	}
	complaint.Status = status
	return &complaint, nil
}

// Assign creates a maintenance task from a complaint and flips the complaint
// to Assigned in one transaction. A complaint that is no longer Pending is a
// conflict; either both writes land or neither does.
func (s *ComplaintService) Assign(complaintID uint, staffUsername string, dueDate time.Time) (*models.MaintenanceTask, error) {
	if staffUsername == "" {
		return nil, code.New(code.ErrEmptyField)
	}

	var task *models.MaintenanceTask
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var complaint models.Complaint
		if err := tx.First(&complaint, complaintID).Error; err != nil {
			if isNotFound(err) {
				return code.New(code.ErrComplaintNotFound)
			}
			return storageError(err)
		}

		result := tx.Model(&models.Complaint{}).
			Where("id = ? AND status = ?", complaintID, models.ComplaintStatusPending).
			Update("status", models.ComplaintStatusAssigned)
		if result.Error != nil {
			return storageError(result.Error)
		}
		if result.RowsAffected == 0 {
			return code.New(code.ErrComplaintNotPending)
		}

		due := dateOnly(dueDate)
		task = &models.MaintenanceTask{
			FlatNo:            complaint.FlatNo,
			Issue:             complaint.Description,
			AssignedTo:        staffUsername,
			Status:            models.TaskStatusPending,
			DueDate:           &due,
			SourceComplaintID: &complaint.ID,
		}
		if err := tx.Create(task).Error; err != nil {
			return storageError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}
