package task

import (
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// --- UseCase Inputs ---

// CreateTaskInput describes a new task. When NaturalInput is set the task
// fields are parsed from it; explicitly set fields take precedence over
// whatever the parser extracted.
type CreateTaskInput struct {
	NaturalInput string
	Title        string
	Category     string
	Priority     string
	Reward       int64
	DueDate      *time.Time
}

type ParseTaskInput struct {
	Text string
}

type ListTasksInput struct {
	Completed *bool
	Category  string
	Limit     int
	Offset    int
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ParseTaskOutput struct {
	Draft model.TaskDraft
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type CompleteTaskOutput struct {
	Task   model.Task
	Wallet int64
}
