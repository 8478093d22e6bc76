package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents profile verification status
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// User represents a user entity
type User struct {
	ID            uuid.UUID    `json:"id"`
	Email         string       `json:"email"`
	PasswordHash  string       `json:"-"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Phone         string       `json:"phone,omitempty"`
	IsActive      bool         `json:"isActive"`
	EmailVerified bool         `json:"emailVerified"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Profile       *UserProfile `json:"profile,omitempty"`
}

// UserProfile holds the extended profile owned by a user
type UserProfile struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"userId"`
	AadhaarNumber      null.String        `json:"aadhaarNumber,omitempty"`
	Education          null.String        `json:"education,omitempty"`
	Skills             null.String        `json:"skills,omitempty"`
	ExperienceYears    null.Int           `json:"experienceYears,omitempty"`
	ProfileCompleted   bool               `json:"profileCompleted"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
}

// IsComplete reports whether every required profile field is populated.
// Zero experience years still counts as populated.
func (p *UserProfile) IsComplete() bool {
	if p == nil {
		return false
	}
	return p.AadhaarNumber.Valid && p.Education.Valid && p.Skills.Valid && p.ExperienceYears.Valid
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Phone     string `json:"phone"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken,omitempty"`
	User         *UserResponse `json:"user"`
}

// ProfileUpdateInput is a partial-update patch: fields left null keep
// their stored value, valid fields overwrite it.
type ProfileUpdateInput struct {
	Phone           null.String `json:"phone"`
	AadhaarNumber   null.String `json:"aadhaarNumber"`
	Education       null.String `json:"education"`
	Skills          null.String `json:"skills"`
	ExperienceYears null.Int    `json:"experienceYears"`
}

// UserResponse represents the caller-facing user view
type UserResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Email              string             `json:"email"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Phone              string             `json:"phone,omitempty"`
	EmailVerified      bool               `json:"emailVerified"`
	CreatedAt          time.Time          `json:"createdAt"`
	AadhaarNumber      null.String        `json:"aadhaarNumber,omitempty"`
	Education          null.String        `json:"education,omitempty"`
	Skills             null.String        `json:"skills,omitempty"`
	ExperienceYears    null.Int           `json:"experienceYears,omitempty"`
	ProfileCompleted   bool               `json:"profileCompleted"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
}
