package usecase

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/analytics"
	"github.com/ayushgupta5924/quickbucks/internal/model"
)

const recentTaskCount = 5

// Stats aggregates the caller's full task history into dashboard numbers.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (analytics.StatsOutput, error) {
	tasks, err := uc.taskRepo.ListAllTasks(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListAllTasks: %v", err)
		return analytics.StatsOutput{}, err
	}

	var completed []model.Task
	var earnings int64
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
			earnings += t.Reward
		}
	}

	rate := 0
	if len(tasks) > 0 {
		rate = int(float64(len(completed))/float64(len(tasks))*100 + 0.5)
	}

	return analytics.StatsOutput{
		TotalTasks:     len(tasks),
		CompletedTasks: len(completed),
		TotalEarnings:  earnings,
		SuccessRate:    rate,
		CategoryStats:  categoryStats(tasks),
		RecentTasks:    recentCompleted(completed),
	}, nil
}

// categoryStats reports volume and completion rate for every category,
// including empty ones, in the canonical category order.
func categoryStats(tasks []model.Task) []analytics.CategoryStat {
	stats := make([]analytics.CategoryStat, 0, len(model.Categories))
	for _, cat := range model.Categories {
		var total, done int
		for _, t := range tasks {
			if t.Category != cat {
				continue
			}
			total++
			if t.Completed {
				done++
			}
		}
		rate := 0
		if total > 0 {
			rate = int(float64(done)/float64(total)*100 + 0.5)
		}
		stats = append(stats, analytics.CategoryStat{
			Category:  string(cat),
			Total:     total,
			Completed: done,
			Rate:      rate,
		})
	}
	return stats
}

// recentCompleted returns the last few completed tasks, most recent first.
func recentCompleted(completed []model.Task) []model.Task {
	start := len(completed) - recentTaskCount
	if start < 0 {
		start = 0
	}
	tail := completed[start:]

	recent := make([]model.Task, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		recent = append(recent, tail[i])
	}
	return recent
}
