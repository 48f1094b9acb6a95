package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row in the users table.
type User struct {
	ID           uuid.UUID
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	IsActive     bool
	IsAdmin      bool
	IsSuperuser  bool
	CompanyID    *uuid.UUID // nil for users not attached to a company
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
