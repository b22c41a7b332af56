package repository

import (
	"hospital-prototype-backend/internal/models"

	"gorm.io/gorm"
)

type ScannerEventRepository struct {
	db *gorm.DB
}

func NewScannerEventRepo(db *gorm.DB) *ScannerEventRepository {
	return &ScannerEventRepository{db: db}
}

// Create appends a new scanner event
func (r *ScannerEventRepository) Create(event *models.ScannerEvent) error {
	return r.db.Create(event).Error
}

// FindBySerialNumber retrieves all events for a patient, most recent first
func (r *ScannerEventRepository) FindBySerialNumber(serialNumber string) ([]models.ScannerEvent, error) {
	var events []models.ScannerEvent
	err := r.db.Where("serial_number = ?", serialNumber).
		Order("timestamp DESC").
		Find(&events).Error
	return events, err
}
