package usecase

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/analytics"
	"github.com/ayushgupta5924/quickbucks/internal/model"
	taskrepo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Patterns reports when and where the caller gets work done: completions per
// weekday, earnings per category, and completions per time-of-day band.
func (uc *implUseCase) Patterns(ctx context.Context, sc model.Scope) (analytics.PatternsOutput, error) {
	completed := true
	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskrepo.ListTasksOptions{
		UserID:    sc.UserID,
		Completed: &completed,
		OrderBy:   "created_at ASC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Patterns ListTasks: %v", err)
		return analytics.PatternsOutput{}, err
	}

	out := analytics.PatternsOutput{
		DailyCompletion:     map[string]int{},
		CategoryPerformance: map[string]analytics.CategoryEarnings{},
	}

	for _, t := range tasks {
		perf := out.CategoryPerformance[string(t.Category)]
		perf.Count++
		perf.TotalReward += t.Reward
		out.CategoryPerformance[string(t.Category)] = perf

		if t.CompletedAt == nil {
			continue
		}
		day := dayNames[t.CompletedAt.Weekday()]
		out.DailyCompletion[day]++

		switch hour := t.CompletedAt.Hour(); {
		case hour >= 6 && hour < 12:
			out.TimePatterns.Morning++
		case hour >= 12 && hour < 18:
			out.TimePatterns.Afternoon++
		case hour >= 18 && hour < 22:
			out.TimePatterns.Evening++
		default:
			out.TimePatterns.Night++
		}
	}

	return out, nil
}
