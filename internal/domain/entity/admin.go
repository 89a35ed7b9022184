package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents an administrator account that records payments and
// manages the roster.
type Admin struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAdmin creates a new Admin entity.
func NewAdmin(name, email, passwordHash string) *Admin {
	now := time.Now().UTC()

	return &Admin{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
