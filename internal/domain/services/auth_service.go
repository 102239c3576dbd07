package services

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// Session kinds
const (
	SessionResident = "resident"
	SessionStaff    = "staff"
	SessionAdmin    = "admin"
)

// Session is the authenticated identity returned by the login entry points.
// Every later authorization check consumes it instead of trusting
// caller-supplied identity.
type Session struct {
	Kind       string
	Name       string
	FlatNo     string // resident sessions
	ResidentID string // resident sessions
	Username   string // staff and admin sessions
	Role       string // staff sessions
}

// RegisterResidentInput carries the registration form fields.
type RegisterResidentInput struct {
	Name            string
	FlatNo          string
	Phone           string
	Age             int
	NumberOfMembers int
	Gender          string
	Designation     string
}

// InterfaceAuthService defines the authentication service interface
type InterfaceAuthService interface {
	RegisterResident(input RegisterResidentInput) (*models.Resident, error)
	LoginResident(flatNo, residentID string) (*Session, error)
	RegisterStaff(username, password, role string) (*models.Staff, error)
	LoginStaff(username, password string) (*Session, error)
	LoginAdmin(username, password string) (*Session, error)
}

// AuthService implements registration and approval-gated login for residents,
// staff and the administrator.
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAuthService creates a new authentication service
func NewAuthService(db *gorm.DB, cfg *config.Config) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
	}
}

// RegisterResident creates an unapproved resident with a fresh random token.
// The token is a full UUIDv4; the unique index backstops the negligible
// collision chance.
func (s *AuthService) RegisterResident(input RegisterResidentInput) (*models.Resident, error) {
	for _, field := range []string{input.Name, input.FlatNo, input.Phone} {
		if strings.TrimSpace(field) == "" {
			return nil, code.New(code.ErrEmptyField)
		}
	}

	resident := &models.Resident{
		ResidentID:      uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		FlatNo:          strings.TrimSpace(input.FlatNo),
		Phone:           strings.TrimSpace(input.Phone),
		Age:             input.Age,
		NumberOfMembers: input.NumberOfMembers,
		Gender:          strings.TrimSpace(input.Gender),
		Designation:     strings.TrimSpace(input.Designation),
		Approved:        false,
	}
	if err := s.DB.Create(resident).Error; err != nil {
		if isDuplicate(err) {
			return nil, code.Wrap(code.ErrResidentAlreadyExists, err)
		}
		return nil, storageError(err)
	}
	return resident, nil
}

// LoginResident authenticates a resident by flat number and token. An
// existing but unapproved account is reported as pending; anything else is an
// invalid-credential failure.
func (s *AuthService) LoginResident(flatNo, residentID string) (*Session, error) {
	var resident models.Resident
	err := s.DB.Where("flat_no = ? AND resident_id = ?", flatNo, residentID).First(&resident).Error
	if err != nil {
		if isNotFound(err) {
			return nil, code.New(code.ErrInvalidCredentials)
		}
		return nil, storageError(err)
	}
	if !resident.Approved {
		return nil, code.New(code.ErrAccountPendingApproval)
	}

	return &Session{
		Kind:       SessionResident,
		Name:       resident.Name,
		FlatNo:     resident.FlatNo,
		ResidentID: resident.ResidentID,
	}, nil
}

// RegisterStaff creates an unapproved staff account storing only the bcrypt
// hash of the password.
func (s *AuthService) RegisterStaff(username, password, role string) (*models.Staff, error) {
	username = strings.TrimSpace(username)
	role = strings.ToLower(strings.TrimSpace(role))
	if username == "" || password == "" {
		return nil, code.New(code.ErrEmptyField)
	}
	if !models.ValidStaffRole(role) {
		return nil, code.New(code.ErrInvalidRole)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, storageError(err)
	}

	staff := &models.Staff{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Approved:     false,
	}
	if err := s.DB.Create(staff).Error; err != nil {
		if isDuplicate(err) {
			return nil, code.Wrap(code.ErrStaffAlreadyExists, err)
		}
		return nil, storageError(err)
	}
	return staff, nil
}

// LoginStaff authenticates a staff member. The pending-approval case uses the
// same code the resident flow does.
func (s *AuthService) LoginStaff(username, password string) (*Session, error) {
	var staff models.Staff
	err := s.DB.Where("username = ?", username).First(&staff).Error
	if err != nil {
		if isNotFound(err) {
			return nil, code.New(code.ErrInvalidCredentials)
		}
		return nil, storageError(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return nil, code.New(code.ErrInvalidCredentials)
	}
	if !staff.Approved {
		return nil, code.New(code.ErrAccountPendingApproval)
	}

	return &Session{
		Kind:     SessionStaff,
		Name:     staff.Username,
		Username: staff.Username,
		Role:     staff.Role,
	}, nil
}

// LoginAdmin authenticates the administrator.
func (s *AuthService) LoginAdmin(username, password string) (*Session, error) {
	var admin models.Admin
	err := s.DB.Where("username = ?", username).First(&admin).Error
	if err != nil {
		if isNotFound(err) {
			return nil, code.New(code.ErrInvalidCredentials)
		}
		return nil, storageError(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, code.New(code.ErrInvalidCredentials)
	}

	return &Session{
		Kind:     SessionAdmin,
		Name:     admin.Username,
		Username: admin.Username,
	}, nil
}
