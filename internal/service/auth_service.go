package service

import (
	"errors"
	"fmt"

	"hospital-prototype-backend/internal/models"
	"hospital-prototype-backend/pkg/utils"

	"gorm.io/gorm"
)

// AdminStore looks up admin accounts for login
type AdminStore interface {
	FindByEmail(email string) (*models.Admin, error)
}

// PatientCredentialStore looks up patient accounts for login
type PatientCredentialStore interface {
	FindByEmail(email string) (*models.Patient, error)
}

type AuthService struct {
	adminStore   AdminStore
	patientStore PatientCredentialStore
	auditRepo    AuditWriter
}

func NewAuthService(adminStore AdminStore, patientStore PatientCredentialStore, auditRepo AuditWriter) *AuthService {
	return &AuthService{
		adminStore:   adminStore,
		patientStore: patientStore,
		auditRepo:    auditRepo,
	}
}

// AuthenticatedUser is the user object returned on a successful login
type AuthenticatedUser struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	SerialNumber string `json:"serialNumber,omitempty"`
}

// LoginResult carries the session token and the authenticated user
type LoginResult struct {
	Token string
	User  AuthenticatedUser
}

// Login verifies credentials against the store matching the requested role
// and issues a session token. Missing accounts and password mismatches are
// indistinguishable to the caller.
func (s *AuthService) Login(email, password, role string) (*LoginResult, error) {
	switch role {
	case "admin":
		return s.loginAdmin(email, password)
	case "patient":
		return s.loginPatient(email, password)
	default:
		return nil, &ValidationError{Field: "role", Reason: "must be admin or patient"}
	}
}

func (s *AuthService) loginAdmin(email, password string) (*LoginResult, error) {
	admin, err := s.adminStore.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.ComparePassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(admin.ID, "admin", admin.Email, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	userID := admin.ID
	_ = s.auditRepo.CreateAuditLog(&userID, admin.Email, "user_login", fmt.Sprintf("Admin %s logged in", admin.Email))

	return &LoginResult{
		Token: token,
		User: AuthenticatedUser{
			ID:    admin.ID,
			Email: admin.Email,
			Role:  "admin",
		},
	}, nil
}

func (s *AuthService) loginPatient(email, password string) (*LoginResult, error) {
	patient, err := s.patientStore.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Seeded patients may have no credential set yet
	if patient.PasswordHash == "" || !utils.ComparePassword(patient.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(patient.ID, "patient", patient.Email, patient.SerialNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	userID := patient.ID
	_ = s.auditRepo.CreateAuditLog(&userID, patient.Email, "user_login", fmt.Sprintf("Patient %s logged in", patient.SerialNumber))

	return &LoginResult{
		Token: token,
		User: AuthenticatedUser{
			ID:           patient.ID,
			Email:        patient.Email,
			Role:         "patient",
			SerialNumber: patient.SerialNumber,
		},
	}, nil
}
