package handler

import (
	"errors"

	"hospital-prototype-backend/internal/models"
	"hospital-prototype-backend/internal/service"
)

var (
	_ service.PatientStore           = (*mockPatientStore)(nil)
	_ service.PatientFinder          = (*mockPatientStore)(nil)
	_ service.PatientCredentialStore = (*mockPatientStore)(nil)
	_ service.ScannerEventStore      = (*mockEventStore)(nil)
	_ service.AdminStore             = (*mockAdminStore)(nil)
	_ service.AuditWriter            = (*mockAuditWriter)(nil)
)

type mockPatientStore struct {
	CreateFunc             func(patient *models.Patient) error
	FindBySerialNumberFunc func(serialNumber string) (*models.Patient, error)
	FindByEmailFunc        func(email string) (*models.Patient, error)
	SaveFunc               func(patient *models.Patient) error
	ListFunc               func(sortColumn, sortDir string, limit, skip int) ([]models.Patient, error)
	CountFunc              func() (int64, error)
}

func (m *mockPatientStore) Create(patient *models.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(patient)
	}
	return nil
}

func (m *mockPatientStore) FindBySerialNumber(serialNumber string) (*models.Patient, error) {
	if m.FindBySerialNumberFunc != nil {
		return m.FindBySerialNumberFunc(serialNumber)
	}
	return nil, errors.New("FindBySerialNumberFunc not implemented in mock")
}

func (m *mockPatientStore) FindByEmail(email string) (*models.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *mockPatientStore) Save(patient *models.Patient) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(patient)
	}
	return nil
}

func (m *mockPatientStore) List(sortColumn, sortDir string, limit, skip int) ([]models.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(sortColumn, sortDir, limit, skip)
	}
	return nil, nil
}

func (m *mockPatientStore) Count() (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0, nil
}

type mockEventStore struct {
	CreateFunc             func(event *models.ScannerEvent) error
	FindBySerialNumberFunc func(serialNumber string) ([]models.ScannerEvent, error)
}

func (m *mockEventStore) Create(event *models.ScannerEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(event)
	}
	return nil
}

func (m *mockEventStore) FindBySerialNumber(serialNumber string) ([]models.ScannerEvent, error) {
	if m.FindBySerialNumberFunc != nil {
		return m.FindBySerialNumberFunc(serialNumber)
	}
	return nil, nil
}

type mockAdminStore struct {
	FindByEmailFunc func(email string) (*models.Admin, error)
}

func (m *mockAdminStore) FindByEmail(email string) (*models.Admin, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

type mockAuditWriter struct{}

func (m *mockAuditWriter) CreateAuditLog(userID *uint, actor, action, details string) error {
	return nil
}
