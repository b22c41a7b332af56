package service

import (
	"errors"
	"sync/atomic"

	"hospital-prototype-backend/internal/models"
)

// Compile-time checks that the mocks satisfy the service seams
var (
	_ PatientStore           = (*MockPatientStore)(nil)
	_ PatientFinder          = (*MockPatientStore)(nil)
	_ PatientCredentialStore = (*MockPatientStore)(nil)
	_ ScannerEventStore      = (*MockScannerEventStore)(nil)
	_ AdminStore             = (*MockAdminStore)(nil)
	_ AuditWriter            = (*MockAuditWriter)(nil)
)

// MockPatientStore is a func-field mock of the patient persistence seams
type MockPatientStore struct {
	CreateFunc             func(patient *models.Patient) error
	FindBySerialNumberFunc func(serialNumber string) (*models.Patient, error)
	FindByEmailFunc        func(email string) (*models.Patient, error)
	SaveFunc               func(patient *models.Patient) error
	ListFunc               func(sortColumn, sortDir string, limit, skip int) ([]models.Patient, error)
	CountFunc              func() (int64, error)

	CreateCallCount int32
	SaveCallCount   int32
}

func (m *MockPatientStore) Create(patient *models.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(patient)
	}
	return nil
}

func (m *MockPatientStore) FindBySerialNumber(serialNumber string) (*models.Patient, error) {
	if m.FindBySerialNumberFunc != nil {
		return m.FindBySerialNumberFunc(serialNumber)
	}
	return nil, errors.New("FindBySerialNumberFunc not implemented in mock")
}

func (m *MockPatientStore) FindByEmail(email string) (*models.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockPatientStore) Save(patient *models.Patient) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(patient)
	}
	return nil
}

func (m *MockPatientStore) List(sortColumn, sortDir string, limit, skip int) ([]models.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(sortColumn, sortDir, limit, skip)
	}
	return nil, nil
}

func (m *MockPatientStore) Count() (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0, nil
}

// MockScannerEventStore is a func-field mock of ScannerEventStore
type MockScannerEventStore struct {
	CreateFunc             func(event *models.ScannerEvent) error
	FindBySerialNumberFunc func(serialNumber string) ([]models.ScannerEvent, error)

	CreateCallCount int32
}

func (m *MockScannerEventStore) Create(event *models.ScannerEvent) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(event)
	}
	return nil
}

func (m *MockScannerEventStore) FindBySerialNumber(serialNumber string) ([]models.ScannerEvent, error) {
	if m.FindBySerialNumberFunc != nil {
		return m.FindBySerialNumberFunc(serialNumber)
	}
	return nil, nil
}

// MockAdminStore is a func-field mock of AdminStore
type MockAdminStore struct {
	FindByEmailFunc func(email string) (*models.Admin, error)
}

func (m *MockAdminStore) FindByEmail(email string) (*models.Admin, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

// MockAuditWriter records audit entries in memory
type MockAuditWriter struct {
	Actions []string
}

func (m *MockAuditWriter) CreateAuditLog(userID *uint, actor, action, details string) error {
	m.Actions = append(m.Actions, action)
	return nil
}
