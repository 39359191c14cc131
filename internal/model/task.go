package model

import "time"

// Category classifies a task into one of five fixed buckets.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
	CategoryOther    Category = "other"
)

// Categories lists all categories in declared order. Analyzers iterate this
// slice so best/worst ties resolve deterministically.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryLearning,
	CategoryOther,
}

// ParseCategory maps a raw string to a Category, defaulting to other.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning, CategoryOther:
		return Category(s)
	}
	return CategoryOther
}

// Priority is a task's urgency level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority maps a raw string to a Priority, defaulting to medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	}
	return PriorityMedium
}

// Task is a persisted unit of work owned by a single user.
// CompletedAt is set if and only if Completed is true.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Category    Category
	Priority    Priority
	Reward      int64 // virtual currency, always >= 0
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
	DueDate     *time.Time
}

// TaskDraft is the structured output of the natural-language extractor.
// It is not yet persisted and carries no owner.
type TaskDraft struct {
	Title    string
	Category Category
	Priority Priority
	DueDate  *time.Time
	Reward   int64
}
