package models

import (
	"time"

	"gorm.io/datatypes"
)

// ScannerEvent represents the scanner_events table.
// One row per check-in scan; rows are never updated or deleted.
// SerialNumber references a patient but is not a store-level foreign key;
// the service layer checks the patient exists before insert.
type ScannerEvent struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	EventID      string            `gorm:"uniqueIndex;size:36" json:"eventId"`
	SerialNumber string            `gorm:"not null;size:100;index:idx_scanner_events_serial_ts,priority:1" json:"serialNumber"`
	ScannerName  string            `gorm:"not null;size:255" json:"scannerName"`
	Organization string            `gorm:"size:255" json:"organization"`
	ScannerPhone string            `gorm:"size:50" json:"scannerPhone"`
	Location     string            `gorm:"size:255" json:"location"`
	Timestamp    time.Time         `gorm:"index:idx_scanner_events_serial_ts,priority:2,sort:desc" json:"timestamp"`
	FacialImage  *string           `gorm:"type:text" json:"facialImage"`
	Metadata     datatypes.JSONMap `json:"metadata"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// TableName specifies the table name for ScannerEvent model
func (ScannerEvent) TableName() string {
	return "scanner_events"
}
