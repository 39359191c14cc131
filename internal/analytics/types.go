package analytics

import "github.com/ayushgupta5924/quickbucks/internal/model"

// CategoryStat summarizes one category's volume and completion rate.
type CategoryStat struct {
	Category  string
	Total     int
	Completed int
	Rate      int
}

// CategoryEarnings aggregates completed work per category.
type CategoryEarnings struct {
	Count       int
	TotalReward int64
}

// TimeSlots buckets completions into the four day bands.
type TimeSlots struct {
	Morning   int
	Afternoon int
	Evening   int
	Night     int
}

// --- UseCase Outputs ---

type StatsOutput struct {
	TotalTasks     int
	CompletedTasks int
	TotalEarnings  int64
	SuccessRate    int
	CategoryStats  []CategoryStat
	RecentTasks    []model.Task
}

type InsightsOutput struct {
	Insights []model.Insight
}

type PatternsOutput struct {
	DailyCompletion     map[string]int
	CategoryPerformance map[string]CategoryEarnings
	TimePatterns        TimeSlots
}
