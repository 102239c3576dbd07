package services

import (
	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// InterfaceMaintenanceTaskService defines the maintenance task service interface
type InterfaceMaintenanceTaskService interface {
	CreateCommonTask(taskName, description, assignedTo string) (*models.MaintenanceTask, error)
	ListCommon() ([]models.MaintenanceTask, error)
	ListAssignedTo(username string) ([]models.MaintenanceTask, error)
	ListAll() ([]models.MaintenanceTask, error)
	UpdateStatus(id uint, status string) error
	UpdateCommonStatus(taskName, assignedTo, status string) error
	Delete(id uint) error
}

// MaintenanceTaskService manages common chores and complaint-sourced tasks
type MaintenanceTaskService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMaintenanceTaskService creates a new maintenance task service
func NewMaintenanceTaskService(db *gorm.DB, cfg *config.Config) InterfaceMaintenanceTaskService {
	return &MaintenanceTaskService{
		DB:     db,
		Config: cfg,
	}
}

// CreateCommonTask creates a society-wide task assigned to a staff member
func (s *MaintenanceTaskService) CreateCommonTask(taskName, description, assignedTo string) (*models.MaintenanceTask, error) {
	if taskName == "" || assignedTo == "" {
		return nil, code.New(code.ErrEmptyField)
	}

	task := &models.MaintenanceTask{
		TaskName:   taskName,
		Issue:      description,
		AssignedTo: assignedTo,
		Status:     models.TaskStatusPending,
		IsCommon:   true,
	}
	if err := s.DB.Create(task).Error; err != nil {
		return nil, storageError(err)
	}
	return task, nil
}

// ListCommon returns society-wide tasks
func (s *MaintenanceTaskService) ListCommon() ([]models.MaintenanceTask, error) {
	var tasks []models.MaintenanceTask
	if err := s.DB.Where("is_common = ?", true).Find(&tasks).Error; err != nil {
		return nil, storageError(err)
	}
	return tasks, nil
}

// ListAssignedTo returns tasks assigned to one staff member
func (s *MaintenanceTaskService) ListAssignedTo(username string) ([]models.MaintenanceTask, error) {
	var tasks []models.MaintenanceTask
	if err := s.DB.Where("assigned_to = ?", username).Find(&tasks).Error; err != nil {
		return nil, storageError(err)
	}
	return tasks, nil
}

// ListAll returns every maintenance task
func (s *MaintenanceTaskService) ListAll() ([]models.MaintenanceTask, error) {
	var tasks []models.MaintenanceTask
	if err := s.DB.Find(&tasks).Error; err != nil {
		return nil, storageError(err)
	}
	return tasks, nil
}

// UpdateStatus sets a task's status to one of the enumerated values
func (s *MaintenanceTaskService) UpdateStatus(id uint, status string) error {
	if !models.ValidTaskStatus(status) {
		return code.New(code.ErrInvalidTaskStatus)
	}
	result := s.DB.Model(&models.MaintenanceTask{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return code.New(code.ErrTaskNotFound)
	}
	return nil
}

// UpdateCommonStatus updates a common task identified by name and assignee
func (s *MaintenanceTaskService) UpdateCommonStatus(taskName, assignedTo, status string) error {
	if !models.ValidTaskStatus(status) {
		return code.New(code.ErrInvalidTaskStatus)
	}
	result := s.DB.Model(&models.MaintenanceTask{}).
		Where("task_name = ? AND assigned_to = ? AND is_common = ?", taskName, assignedTo, true).
		Update("status", status)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return code.New(code.ErrTaskNotFound)
	}
	return nil
}

// Delete removes a maintenance task
func (s *MaintenanceTaskService) Delete(id uint) error {
	result := s.DB.Delete(&models.MaintenanceTask{}, id)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return code.New(code.ErrTaskNotFound)
	}
	return nil
}
