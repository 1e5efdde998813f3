package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the account domain.
// Password always holds a bcrypt hash once persisted.
type User struct {
	ID                int64
	FullName          string
	Email             string
	Password          string
	PhoneNumber       *string
	ProfilePictureURL *string
	Bio               *string
	Location          *string
	IsMentor          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
