package company

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a row in the companies table.
type Company struct {
	ID          uuid.UUID
	Name        string
	Description string
	Rating      int // 1..5, enforced at the API boundary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
