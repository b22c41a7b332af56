package repository

import (
	"hospital-prototype-backend/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByEmail retrieves an admin account by email
func (r *AdminRepository) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create creates a new admin account, used by the seeder
func (r *AdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}
