package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is returned when a company record is not found.
var ErrCompanyNotFound = errors.New("company not found")

// Repository provides operations on the companies table.
type Repository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	List(ctx context.Context) ([]Company, error)
}
