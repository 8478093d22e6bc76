package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	Phone         string    `gorm:"type:varchar(20)"`
	IsActive      bool      `gorm:"not null;default:true"`
	EmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type UserProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AadhaarNumber      *string   `gorm:"type:varchar(12)"`
	Education          *string   `gorm:"type:varchar(500)"`
	Skills             *string   `gorm:"type:text"`
	ExperienceYears    *int
	ProfileCompleted   bool   `gorm:"not null;default:false"`
	VerificationStatus string `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
