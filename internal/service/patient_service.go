package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-prototype-backend/internal/models"
	"hospital-prototype-backend/pkg/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PatientStore is the persistence seam used by PatientService
type PatientStore interface {
	Create(patient *models.Patient) error
	FindBySerialNumber(serialNumber string) (*models.Patient, error)
	Save(patient *models.Patient) error
	List(sortColumn, sortDir string, limit, skip int) ([]models.Patient, error)
	Count() (int64, error)
}

// AuditWriter records security-relevant actions
type AuditWriter interface {
	CreateAuditLog(userID *uint, actor, action, details string) error
}

type PatientService struct {
	patientStore PatientStore
	auditRepo    AuditWriter
}

func NewPatientService(patientStore PatientStore, auditRepo AuditWriter) *PatientService {
	return &PatientService{
		patientStore: patientStore,
		auditRepo:    auditRepo,
	}
}

type EmergencyContactPayload struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

type EmergencyPhysicianPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type HistoryEntryPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        *string `json:"date"`
	Notes       string  `json:"notes"`
}

type ScreeningEntryPayload struct {
	Facility string  `json:"facility"`
	Date     *string `json:"date"`
	Type     string  `json:"type"`
	Result   string  `json:"result"`
	Notes    string  `json:"notes"`
}

// MedicalHistoryPayload carries the five history lists. A nil list means
// "leave untouched" on update; a present list replaces the stored one
// wholesale.
type MedicalHistoryPayload struct {
	GeneralHistory              []HistoryEntryPayload `json:"generalHistory"`
	MaternalReproductiveHistory []HistoryEntryPayload `json:"maternalReproductiveHistory"`
	Allergies                   []HistoryEntryPayload `json:"allergies"`
	SurgicalHistory             []HistoryEntryPayload `json:"surgicalHistory"`
	Medications                 []HistoryEntryPayload `json:"medications"`
}

type CreatePatientRequest struct {
	SerialNumber       string                     `json:"serialNumber" binding:"required"`
	FullName           string                     `json:"fullName"`
	DateOfBirth        string                     `json:"dateOfBirth"`
	Gender             string                     `json:"gender"`
	BloodGroup         string                     `json:"bloodGroup"`
	RegistrationDate   string                     `json:"registrationDate"`
	Phone              string                     `json:"phone"`
	Email              string                     `json:"email"`
	Address            string                     `json:"address"`
	Password           string                     `json:"password"`
	EmergencyContacts  []EmergencyContactPayload  `json:"emergencyContacts"`
	EmergencyPhysician *EmergencyPhysicianPayload `json:"emergencyPhysician"`
	MedicalHistory     *MedicalHistoryPayload     `json:"medicalHistory"`
	ScreeningHistory   []ScreeningEntryPayload    `json:"screeningHistory"`
	ExtraData          map[string]interface{}     `json:"extraData"`
}

// UpdatePatientRequest applies a partial update: nil fields stay untouched.
// The serial number itself is immutable and comes from the URL path.
type UpdatePatientRequest struct {
	FullName           *string                    `json:"fullName"`
	DateOfBirth        *string                    `json:"dateOfBirth"`
	Gender             *string                    `json:"gender"`
	BloodGroup         *string                    `json:"bloodGroup"`
	RegistrationDate   *string                    `json:"registrationDate"`
	Phone              *string                    `json:"phone"`
	Email              *string                    `json:"email"`
	Address            *string                    `json:"address"`
	EmergencyContacts  []EmergencyContactPayload  `json:"emergencyContacts"`
	EmergencyPhysician *EmergencyPhysicianPayload `json:"emergencyPhysician"`
	MedicalHistory     *MedicalHistoryPayload     `json:"medicalHistory"`
	ScreeningHistory   []ScreeningEntryPayload    `json:"screeningHistory"`
	ExtraData          map[string]interface{}     `json:"extraData"`
}

type ListParams struct {
	SortBy    string
	SortOrder string
	Limit     int
	Skip      int
}

// dateLayouts are the wire formats accepted for date fields
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// parseDateField parses a top-level date field. An empty value clears the
// field; a malformed one is a validation failure.
func parseDateField(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, &ValidationError{Field: field, Reason: "invalid date value"}
	}
	return &t, nil
}

// normalizeHistoryEntries converts payload entries into stored entries.
// Absent or unparseable dates become null rather than errors.
func normalizeHistoryEntries(entries []HistoryEntryPayload) []models.HistoryEntry {
	out := make([]models.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		var date *time.Time
		if entry.Date != nil && *entry.Date != "" {
			if t, err := parseDate(*entry.Date); err == nil {
				date = &t
			}
		}
		out = append(out, models.HistoryEntry{
			Title:       entry.Title,
			Description: entry.Description,
			Date:        date,
			Notes:       entry.Notes,
		})
	}
	return out
}

func normalizeScreeningEntries(entries []ScreeningEntryPayload) []models.ScreeningEntry {
	out := make([]models.ScreeningEntry, 0, len(entries))
	for _, entry := range entries {
		var date *time.Time
		if entry.Date != nil && *entry.Date != "" {
			if t, err := parseDate(*entry.Date); err == nil {
				date = &t
			}
		}
		out = append(out, models.ScreeningEntry{
			Facility: entry.Facility,
			Date:     date,
			Type:     entry.Type,
			Result:   entry.Result,
			Notes:    entry.Notes,
		})
	}
	return out
}

func toEmergencyContacts(payload []EmergencyContactPayload) []models.EmergencyContact {
	contacts := make([]models.EmergencyContact, 0, len(payload))
	for _, c := range payload {
		contacts = append(contacts, models.EmergencyContact{
			Name:     c.Name,
			Relation: c.Relation,
			Phone:    c.Phone,
		})
	}
	return contacts
}

func toEmergencyPhysician(payload *EmergencyPhysicianPayload) *models.EmergencyPhysician {
	if payload == nil {
		return nil
	}
	return &models.EmergencyPhysician{
		Name:  payload.Name,
		Phone: payload.Phone,
		Email: payload.Email,
	}
}

func toMedicalHistory(payload *MedicalHistoryPayload) models.MedicalHistory {
	history := models.MedicalHistory{
		GeneralHistory:              []models.HistoryEntry{},
		MaternalReproductiveHistory: []models.HistoryEntry{},
		Allergies:                   []models.HistoryEntry{},
		SurgicalHistory:             []models.HistoryEntry{},
		Medications:                 []models.HistoryEntry{},
	}
	if payload == nil {
		return history
	}
	if payload.GeneralHistory != nil {
		history.GeneralHistory = normalizeHistoryEntries(payload.GeneralHistory)
	}
	if payload.MaternalReproductiveHistory != nil {
		history.MaternalReproductiveHistory = normalizeHistoryEntries(payload.MaternalReproductiveHistory)
	}
	if payload.Allergies != nil {
		history.Allergies = normalizeHistoryEntries(payload.Allergies)
	}
	if payload.SurgicalHistory != nil {
		history.SurgicalHistory = normalizeHistoryEntries(payload.SurgicalHistory)
	}
	if payload.Medications != nil {
		history.Medications = normalizeHistoryEntries(payload.Medications)
	}
	return history
}

// Create persists a new patient record
func (s *PatientService) Create(req *CreatePatientRequest, actorID *uint, actor string) (*models.Patient, error) {
	dateOfBirth, err := parseDateField("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	registrationDate, err := parseDateField("registrationDate", req.RegistrationDate)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		SerialNumber:       req.SerialNumber,
		FullName:           req.FullName,
		DateOfBirth:        dateOfBirth,
		Gender:             req.Gender,
		BloodGroup:         req.BloodGroup,
		RegistrationDate:   registrationDate,
		Phone:              req.Phone,
		Email:              req.Email,
		Address:            req.Address,
		EmergencyContacts:  datatypes.NewJSONType(toEmergencyContacts(req.EmergencyContacts)),
		EmergencyPhysician: datatypes.NewJSONType(toEmergencyPhysician(req.EmergencyPhysician)),
		MedicalHistory:     datatypes.NewJSONType(toMedicalHistory(req.MedicalHistory)),
		ScreeningHistory:   datatypes.NewJSONType(normalizeScreeningEntries(req.ScreeningHistory)),
		ExtraData:          datatypes.JSONMap(req.ExtraData),
	}

	if req.Password != "" {
		passwordHash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patient.PasswordHash = passwordHash
	}

	if err := s.patientStore.Create(patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSerial
		}
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	details := fmt.Sprintf("Created patient %s", patient.SerialNumber)
	_ = s.auditRepo.CreateAuditLog(actorID, actor, "patient_create", details)

	return patient, nil
}

// GetBySerialNumber retrieves a patient by serial number
func (s *PatientService) GetBySerialNumber(serialNumber string) (*models.Patient, error) {
	patient, err := s.patientStore.FindBySerialNumber(serialNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// Update applies a partial update to an existing patient. Provided top-level
// fields are merged in; medical history sub-lists replace the stored ones
// wholesale when present.
func (s *PatientService) Update(serialNumber string, req *UpdatePatientRequest, actorID *uint, actor string) (*models.Patient, error) {
	patient, err := s.GetBySerialNumber(serialNumber)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		patient.FullName = *req.FullName
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := parseDateField("dateOfBirth", *req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		patient.DateOfBirth = dateOfBirth
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.BloodGroup != nil {
		patient.BloodGroup = *req.BloodGroup
	}
	if req.RegistrationDate != nil {
		registrationDate, err := parseDateField("registrationDate", *req.RegistrationDate)
		if err != nil {
			return nil, err
		}
		patient.RegistrationDate = registrationDate
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.EmergencyContacts != nil {
		patient.EmergencyContacts = datatypes.NewJSONType(toEmergencyContacts(req.EmergencyContacts))
	}
	if req.EmergencyPhysician != nil {
		patient.EmergencyPhysician = datatypes.NewJSONType(toEmergencyPhysician(req.EmergencyPhysician))
	}
	if req.MedicalHistory != nil {
		history := patient.MedicalHistory.Data()
		if req.MedicalHistory.GeneralHistory != nil {
			history.GeneralHistory = normalizeHistoryEntries(req.MedicalHistory.GeneralHistory)
		}
		if req.MedicalHistory.MaternalReproductiveHistory != nil {
			history.MaternalReproductiveHistory = normalizeHistoryEntries(req.MedicalHistory.MaternalReproductiveHistory)
		}
		if req.MedicalHistory.Allergies != nil {
			history.Allergies = normalizeHistoryEntries(req.MedicalHistory.Allergies)
		}
		if req.MedicalHistory.SurgicalHistory != nil {
			history.SurgicalHistory = normalizeHistoryEntries(req.MedicalHistory.SurgicalHistory)
		}
		if req.MedicalHistory.Medications != nil {
			history.Medications = normalizeHistoryEntries(req.MedicalHistory.Medications)
		}
		patient.MedicalHistory = datatypes.NewJSONType(history)
	}
	if req.ScreeningHistory != nil {
		patient.ScreeningHistory = datatypes.NewJSONType(normalizeScreeningEntries(req.ScreeningHistory))
	}
	if req.ExtraData != nil {
		patient.ExtraData = datatypes.JSONMap(req.ExtraData)
	}

	if err := s.patientStore.Save(patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSerial
		}
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	details := fmt.Sprintf("Updated patient %s", patient.SerialNumber)
	_ = s.auditRepo.CreateAuditLog(actorID, actor, "patient_update", details)

	return patient, nil
}

// sortColumns maps the API sort field names onto table columns. Anything
// outside this map falls back to creation time.
var sortColumns = map[string]string{
	"serialNumber":     "serial_number",
	"fullName":         "full_name",
	"dateOfBirth":      "date_of_birth",
	"registrationDate": "registration_date",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

// List retrieves patients with sorting and pagination plus the total count
// independent of pagination
func (s *PatientService) List(params ListParams) ([]models.Patient, int64, error) {
	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		direction = "ASC"
	}

	patients, err := s.patientStore.List(column, direction, params.Limit, params.Skip)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}

	total, err := s.patientStore.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	return patients, total, nil
}
