package container

import (
	"sync"

	"gorm.io/gorm"

	"society-service/internal/domain/services"
	"society-service/internal/infrastructure/config"
)

// ServiceContainer wires every service to the shared database handle
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	authService         services.InterfaceAuthService
	residentService     services.InterfaceResidentService
	staffService        services.InterfaceStaffService
	complaintService    services.InterfaceComplaintService
	taskService         services.InterfaceMaintenanceTaskService
	bookingService      services.InterfaceBookingService
	deliveryService     services.InterfaceDeliveryService
	pollService         services.InterfacePollService
	announcementService services.InterfaceAnnouncementService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes all services
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database handle is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices constructs every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authService = services.NewAuthService(c.db, c.config)
	c.residentService = services.NewResidentService(c.db, c.config)
	c.staffService = services.NewStaffService(c.db, c.config)
	c.complaintService = services.NewComplaintService(c.db, c.config)
	c.taskService = services.NewMaintenanceTaskService(c.db, c.config)
	c.bookingService = services.NewBookingService(c.db, c.config)
	c.deliveryService = services.NewDeliveryService(c.db, c.config)
	c.pollService = services.NewPollService(c.db, c.config)
	c.announcementService = services.NewAnnouncementService(c.db, c.config)
}

// Auth returns the authentication service
func (c *ServiceContainer) Auth() services.InterfaceAuthService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authService
}

// Residents returns the resident service
func (c *ServiceContainer) Residents() services.InterfaceResidentService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.residentService
}

// Staff returns the staff service
func (c *ServiceContainer) Staff() services.InterfaceStaffService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.staffService
}

// Complaints returns the complaint service
func (c *ServiceContainer) Complaints() services.InterfaceComplaintService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.complaintService
}

// Tasks returns the maintenance task service
func (c *ServiceContainer) Tasks() services.InterfaceMaintenanceTaskService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.taskService
}

// Bookings returns the amenity booking service
func (c *ServiceContainer) Bookings() services.InterfaceBookingService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bookingService
}

// Deliveries returns the delivery service
func (c *ServiceContainer) Deliveries() services.InterfaceDeliveryService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deliveryService
}

// Polls returns the poll service
func (c *ServiceContainer) Polls() services.InterfacePollService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pollService
}

// Announcements returns the announcement service
func (c *ServiceContainer) Announcements() services.InterfaceAnnouncementService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.announcementService
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
