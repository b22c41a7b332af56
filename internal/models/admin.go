package models

import "time"

// Admin represents the admins table. Accounts are created only by seeding.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Role         string    `gorm:"size:20;default:'admin'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for Admin model
func (Admin) TableName() string {
	return "admins"
}
