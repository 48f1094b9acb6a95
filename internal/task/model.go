package task

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusRemoved    Status = "REMOVED"
)

// Valid reports whether s is one of the known task statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusRemoved:
		return true
	}
	return false
}

// Task represents a row in the tasks table.
type Task struct {
	ID          uuid.UUID
	Summary     string
	Description string
	Priority    int // >= 0
	Status      Status
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
