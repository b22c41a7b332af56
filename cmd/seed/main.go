package main

import (
	"errors"
	"log"
	"os"
	"time"

	"hospital-prototype-backend/internal/config"
	"hospital-prototype-backend/internal/database"
	"hospital-prototype-backend/internal/models"
	"hospital-prototype-backend/internal/repository"
	"hospital-prototype-backend/pkg/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("Invalid seed date %q: %v", value, err)
	}
	return &t
}

func emptyHistory() datatypes.JSONType[models.MedicalHistory] {
	return datatypes.NewJSONType(models.MedicalHistory{
		GeneralHistory:              []models.HistoryEntry{},
		MaternalReproductiveHistory: []models.HistoryEntry{},
		Allergies:                   []models.HistoryEntry{},
		SurgicalHistory:             []models.HistoryEntry{},
		Medications:                 []models.HistoryEntry{},
	})
}

func seedAdmin(adminRepo *repository.AdminRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "adminpassword"
	}

	if _, err := adminRepo.FindByEmail(email); err == nil {
		log.Printf("Admin %s already exists", email)
		return
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &models.Admin{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "admin",
	}
	if err := adminRepo.Create(admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Admin created: %s", email)
}

func seedPatients(patientRepo *repository.PatientRepository) {
	patients := []models.Patient{
		{
			SerialNumber:     "uwra00001",
			FullName:         "Amina Yusuf",
			DateOfBirth:      date("1985-04-12"),
			Gender:           "Female",
			BloodGroup:       "O+",
			RegistrationDate: date("2024-01-05"),
			Phone:            "+234 803 123 4567",
			Email:            "amina.yusuf@example.com",
			Address:          "12 Unity Crescent, Abuja, Nigeria",
			EmergencyContacts: datatypes.NewJSONType([]models.EmergencyContact{
				{Name: "Khalid Yusuf", Relation: "Spouse", Phone: "+234 803 765 4321"},
			}),
			EmergencyPhysician: datatypes.NewJSONType(&models.EmergencyPhysician{
				Name: "Dr. Samuel Okoro", Phone: "+234 809 111 2222", Email: "samuel.okoro@cityhospital.com",
			}),
			MedicalHistory:   emptyHistory(),
			ScreeningHistory: datatypes.NewJSONType([]models.ScreeningEntry{}),
		},
		{
			SerialNumber:     "uwra00002",
			FullName:         "Chinedu Obasi",
			DateOfBirth:      date("1978-09-23"),
			Gender:           "Male",
			BloodGroup:       "A-",
			RegistrationDate: date("2024-02-14"),
			Phone:            "+234 702 987 6543",
			Email:            "chinedu.obasi@example.com",
			Address:          "45 Admiralty Way, Lekki, Lagos",
			EmergencyContacts: datatypes.NewJSONType([]models.EmergencyContact{
				{Name: "Ifeoma Obasi", Relation: "Sister", Phone: "+234 701 234 5678"},
			}),
			EmergencyPhysician: datatypes.NewJSONType(&models.EmergencyPhysician{
				Name: "Dr. Helen Bassey", Phone: "+234 806 333 4444", Email: "helen.bassey@metroclinic.com",
			}),
			MedicalHistory:   emptyHistory(),
			ScreeningHistory: datatypes.NewJSONType([]models.ScreeningEntry{}),
		},
		{
			SerialNumber:     "uwra00003",
			FullName:         "Fatima Bello",
			DateOfBirth:      date("1992-12-05"),
			Gender:           "Female",
			BloodGroup:       "B+",
			RegistrationDate: date("2024-03-02"),
			Phone:            "+234 704 555 8899",
			Email:            "fatima.bello@example.com",
			Address:          "8 Emerald Estate, Kaduna, Nigeria",
			EmergencyContacts: datatypes.NewJSONType([]models.EmergencyContact{
				{Name: "Bello Musa", Relation: "Father", Phone: "+234 803 222 3333"},
			}),
			EmergencyPhysician: datatypes.NewJSONType(&models.EmergencyPhysician{
				Name: "Dr. Grace Eweka", Phone: "+234 802 777 8888", Email: "grace.eweka@federalhospital.com",
			}),
			MedicalHistory:   emptyHistory(),
			ScreeningHistory: datatypes.NewJSONType([]models.ScreeningEntry{}),
		},
		{
			SerialNumber:     "uwra00004",
			FullName:         "Michael Adewale",
			DateOfBirth:      date("1988-07-19"),
			Gender:           "Male",
			BloodGroup:       "AB+",
			RegistrationDate: date("2024-03-18"),
			Phone:            "+234 809 444 5566",
			Email:            "michael.adewale@example.com",
			Address:          "27 Broad Street, Marina, Lagos",
			EmergencyContacts: datatypes.NewJSONType([]models.EmergencyContact{
				{Name: "Kemi Adewale", Relation: "Wife", Phone: "+234 705 444 8899"},
			}),
			EmergencyPhysician: datatypes.NewJSONType(&models.EmergencyPhysician{
				Name: "Dr. Victor Onyeneke", Phone: "+234 708 111 9999", Email: "victor.onyeneke@lagoshospital.com",
			}),
			MedicalHistory:   emptyHistory(),
			ScreeningHistory: datatypes.NewJSONType([]models.ScreeningEntry{}),
		},
	}

	for i := range patients {
		patient := &patients[i]
		if _, err := patientRepo.FindBySerialNumber(patient.SerialNumber); err == nil {
			log.Printf("Patient %s already exists, skipping", patient.SerialNumber)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check patient %s: %v", patient.SerialNumber, err)
		}
		if err := patientRepo.Create(patient); err != nil {
			log.Fatalf("Failed to seed patient %s: %v", patient.SerialNumber, err)
		}
		log.Printf("Patient created: %s (%s)", patient.SerialNumber, patient.FullName)
	}
}

func main() {
	cfg := config.LoadConfig()
	db := database.Connect(cfg)

	seedAdmin(repository.NewAdminRepo(db))
	seedPatients(repository.NewPatientRepo(db))

	log.Println("Seeding complete")
}
