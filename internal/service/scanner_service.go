package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-prototype-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PatientFinder is the read-only patient lookup used for the referential
// check before an event insert
type PatientFinder interface {
	FindBySerialNumber(serialNumber string) (*models.Patient, error)
}

// ScannerEventStore is the persistence seam for scanner events
type ScannerEventStore interface {
	Create(event *models.ScannerEvent) error
	FindBySerialNumber(serialNumber string) ([]models.ScannerEvent, error)
}

type ScannerService struct {
	patientFinder PatientFinder
	eventStore    ScannerEventStore
	auditRepo     AuditWriter
}

func NewScannerService(patientFinder PatientFinder, eventStore ScannerEventStore, auditRepo AuditWriter) *ScannerService {
	return &ScannerService{
		patientFinder: patientFinder,
		eventStore:    eventStore,
		auditRepo:     auditRepo,
	}
}

type RecordScanRequest struct {
	ScannerName  string                 `json:"scannerName" binding:"required"`
	Organization string                 `json:"organization"`
	ScannerPhone string                 `json:"scannerPhone"`
	Location     string                 `json:"location"`
	Timestamp    string                 `json:"timestamp"`
	FacialImage  *string                `json:"facialImage"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// PatientIdentity is the minimal patient echo returned with a recorded scan
type PatientIdentity struct {
	SerialNumber string `json:"serialNumber"`
	FullName     string `json:"fullName"`
}

// RecordScan persists a check-in event for an existing patient. The patient
// lookup happens first; nothing is written when it fails.
func (s *ScannerService) RecordScan(serialNumber string, req *RecordScanRequest) (*models.ScannerEvent, *PatientIdentity, error) {
	patient, err := s.patientFinder.FindBySerialNumber(serialNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPatientNotFound
		}
		return nil, nil, err
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		parsed, err := parseDate(req.Timestamp)
		if err != nil {
			return nil, nil, &ValidationError{Field: "timestamp", Reason: "invalid date value"}
		}
		timestamp = parsed
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	event := &models.ScannerEvent{
		EventID:      uuid.New().String(),
		SerialNumber: patient.SerialNumber,
		ScannerName:  req.ScannerName,
		Organization: req.Organization,
		ScannerPhone: req.ScannerPhone,
		Location:     req.Location,
		Timestamp:    timestamp,
		FacialImage:  req.FacialImage,
		Metadata:     datatypes.JSONMap(metadata),
	}

	if err := s.eventStore.Create(event); err != nil {
		return nil, nil, fmt.Errorf("failed to record scanner event: %w", err)
	}

	identity := &PatientIdentity{
		SerialNumber: patient.SerialNumber,
		FullName:     patient.FullName,
	}

	details := fmt.Sprintf("Scan recorded for patient %s by %s", patient.SerialNumber, req.ScannerName)
	_ = s.auditRepo.CreateAuditLog(nil, req.ScannerName, "scan_record", details)

	return event, identity, nil
}

// ListScans retrieves a patient's events, most recent first
func (s *ScannerService) ListScans(serialNumber string) ([]models.ScannerEvent, *PatientIdentity, error) {
	patient, err := s.patientFinder.FindBySerialNumber(serialNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPatientNotFound
		}
		return nil, nil, err
	}

	events, err := s.eventStore.FindBySerialNumber(patient.SerialNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch scanner events: %w", err)
	}

	identity := &PatientIdentity{
		SerialNumber: patient.SerialNumber,
		FullName:     patient.FullName,
	}

	return events, identity, nil
}
