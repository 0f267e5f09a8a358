package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserStatusPending  = "pending"
	UserStatusApproved = "approved"
)

var (
	ErrInvalidUserStatus = errors.New("invalid user status")
	ErrMissingEmail      = errors.New("user email is required")
	ErrMissingPassword   = errors.New("user password hash is required")
)

// User owns a ledger. New registrations start in pending status and cannot
// sign in until approved.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Status == "" {
		u.Status = UserStatusPending
	}

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

// BeforeUpdate hook for User
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrMissingEmail
	}

	if u.PasswordHash == "" {
		return ErrMissingPassword
	}

	if !IsValidUserStatus(u.Status) {
		return ErrInvalidUserStatus
	}

	return nil
}

// IsApproved returns true if the user may sign in
func (u *User) IsApproved() bool {
	return u.Status == UserStatusApproved
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}

// IsValidUserStatus checks if the user status is valid
func IsValidUserStatus(status string) bool {
	switch status {
	case UserStatusPending, UserStatusApproved:
		return true
	default:
		return false
	}
}
