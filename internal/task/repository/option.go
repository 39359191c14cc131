package repository

import (
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID       string
	UserID   string
	Title    string
	Category model.Category
	Priority model.Priority
	Reward   int64
	DueDate  *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID    string
	Completed *bool
	Category  string
	Limit     int
	Offset    int
	OrderBy   string
}

// CompleteTaskOptions holds parameters for the conditional completion update.
type CompleteTaskOptions struct {
	ID          string
	UserID      string
	CompletedAt time.Time
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
