package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoleStudent is the only role the service currently assigns.
const RoleStudent = "student"

// Student represents a registered student account with profile preferences.
type Student struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Preferences  []string  `json:"preferences"`
	ResumeURL    *string   `json:"resumeUrl,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
