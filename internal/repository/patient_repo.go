package repository

import (
	"fmt"

	"hospital-prototype-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create inserts a new patient row.
// Returns gorm.ErrDuplicatedKey when the serial number is already taken.
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// FindBySerialNumber retrieves a patient by serial number
func (r *PatientRepository) FindBySerialNumber(serialNumber string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("serial_number = ?", serialNumber).First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// FindByEmail retrieves a patient by email, used for patient login
func (r *PatientRepository) FindByEmail(email string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("email = ?", email).First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Save writes back a loaded patient row in full
func (r *PatientRepository) Save(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// List retrieves patients ordered by the given column and direction with
// optional pagination. Column and direction are validated by the service
// layer before they reach this query.
func (r *PatientRepository) List(sortColumn, sortDir string, limit, skip int) ([]models.Patient, error) {
	var patients []models.Patient
	query := r.db.Order(fmt.Sprintf("%s %s", sortColumn, sortDir))
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&patients).Error
	return patients, err
}

// Count returns the total number of patients regardless of pagination
func (r *PatientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Count(&count).Error
	return count, err
}
