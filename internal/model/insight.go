package model

// InsightPriority ranks an insight for presentation ordering.
type InsightPriority string

const (
	InsightPriorityHigh   InsightPriority = "high"
	InsightPriorityMedium InsightPriority = "medium"
	InsightPriorityLow    InsightPriority = "low"
	InsightPriorityInfo   InsightPriority = "info"
)

// Rank returns the numeric rank used for sorting (higher sorts first).
func (p InsightPriority) Rank() int {
	switch p {
	case InsightPriorityHigh:
		return 3
	case InsightPriorityMedium:
		return 2
	case InsightPriorityLow:
		return 1
	}
	return 0
}

// Insight is a short generated observation about a user's task history.
// Insights are recomputed on demand and never persisted.
type Insight struct {
	Type     string
	Icon     string
	Title    string
	Message  string
	Priority InsightPriority
}
