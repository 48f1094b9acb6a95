package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task record is not found.
var ErrTaskNotFound = errors.New("task not found")

// ErrDuplicateSummary is returned when a task with the same summary already exists.
var ErrDuplicateSummary = errors.New("task summary already exists")

// Repository provides operations on the tasks table.
type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]Task, error)
}
