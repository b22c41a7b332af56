package models

import (
	"time"

	"gorm.io/datatypes"
)

// EmergencyContact is a person to reach when the patient cannot respond
type EmergencyContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

// EmergencyPhysician is the physician on record for emergencies
type EmergencyPhysician struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// HistoryEntry is a single dated entry in one of the medical history lists
type HistoryEntry struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Notes       string     `json:"notes"`
}

// ScreeningEntry records one screening performed at a facility
type ScreeningEntry struct {
	Facility string     `json:"facility"`
	Date     *time.Time `json:"date"`
	Type     string     `json:"type"`
	Result   string     `json:"result"`
	Notes    string     `json:"notes"`
}

// MedicalHistory groups the five independent ordered history lists
type MedicalHistory struct {
	GeneralHistory              []HistoryEntry `json:"generalHistory"`
	MaternalReproductiveHistory []HistoryEntry `json:"maternalReproductiveHistory"`
	Allergies                   []HistoryEntry `json:"allergies"`
	SurgicalHistory             []HistoryEntry `json:"surgicalHistory"`
	Medications                 []HistoryEntry `json:"medications"`
}

// Patient represents the patients table.
// SerialNumber is the caller-assigned unique key and the join key for
// scanner events; it never changes after creation.
type Patient struct {
	ID                 uint                                        `gorm:"primaryKey" json:"id"`
	SerialNumber       string                                      `gorm:"uniqueIndex;not null;size:100" json:"serialNumber"`
	FullName           string                                      `gorm:"size:255" json:"fullName"`
	DateOfBirth        *time.Time                                  `json:"dateOfBirth"`
	Gender             string                                      `gorm:"size:50" json:"gender"`
	BloodGroup         string                                      `gorm:"size:10" json:"bloodGroup"`
	RegistrationDate   *time.Time                                  `json:"registrationDate"`
	Phone              string                                      `gorm:"size:50" json:"phone"`
	Email              string                                      `gorm:"size:255;index" json:"email"`
	Address            string                                      `gorm:"type:text" json:"address"`
	PasswordHash       string                                      `gorm:"size:255" json:"-"`
	EmergencyContacts  datatypes.JSONType[[]EmergencyContact]      `json:"emergencyContacts"`
	EmergencyPhysician datatypes.JSONType[*EmergencyPhysician]     `json:"emergencyPhysician"`
	MedicalHistory     datatypes.JSONType[MedicalHistory]          `json:"medicalHistory"`
	ScreeningHistory   datatypes.JSONType[[]ScreeningEntry]        `json:"screeningHistory"`
	ExtraData          datatypes.JSONMap                           `json:"extraData"`
	CreatedAt          time.Time                                   `json:"createdAt"`
	UpdatedAt          time.Time                                   `json:"updatedAt"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
