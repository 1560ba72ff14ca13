package models

import (
	"time"
)

// ═══════════════════════════════════════════════════════════
// Main User Model (GORM)
// ═══════════════════════════════════════════════════════════

type User struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Location  *string   `json:"location"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type RegisterRequest struct {
	Username  string  `json:"username" binding:"required" example:"janedoe"`
	Email     string  `json:"email" binding:"required,email" example:"jane@example.com"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Location  *string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Location  *string `json:"location"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ═══════════════════════════════════════════════════════════
// User Preferences
// ═══════════════════════════════════════════════════════════

type UserPreference struct {
	ID                  int     `json:"id" gorm:"primaryKey"`
	UserID              int     `json:"userId" gorm:"not null;uniqueIndex"`
	PreferredCategories StrList `json:"preferredCategories" gorm:"type:jsonb;not null;default:'[]'"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

type PreferencesRequest struct {
	PreferredCategories []string `json:"preferredCategories" binding:"required"`
}
