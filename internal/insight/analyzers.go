package insight

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// Threshold constants shared by the analyzers.
const (
	excellentRate = 80 // percent
	goodRate      = 60

	championRate  = 70
	focusAreaRate = 50
	focusAreaMin  = 2 // tasks in category

	largeTaskReward = 200
	smallTaskReward = 100
	sizeRateGap     = 20 // percentage points
	hugeTaskReward  = 500

	highValueReward = 300
	streakMin       = 3
	peakCountMin    = 2
)

// analyzeCompletionRate buckets the overall completion rate into
// excellent / good / needs-improvement.
func (e *Engine) analyzeCompletionRate(_ time.Time, snap snapshot) []model.Insight {
	if len(snap.all) == 0 {
		return nil
	}
	percent := roundedRate(len(snap.completed), len(snap.all))

	switch {
	case percent >= excellentRate:
		return []model.Insight{{
			Type:     "success",
			Icon:     "🎯",
			Title:    "Excellent Performance!",
			Message:  fmt.Sprintf("%d%% completion rate. You're crushing your goals!", percent),
			Priority: model.InsightPriorityHigh,
		}}
	case percent >= goodRate:
		return []model.Insight{{
			Type:     "good",
			Icon:     "📈",
			Title:    "Good Progress",
			Message:  fmt.Sprintf("%d%% completion rate. Consider breaking larger tasks into smaller ones.", percent),
			Priority: model.InsightPriorityMedium,
		}}
	default:
		return []model.Insight{{
			Type:     "improvement",
			Icon:     "💡",
			Title:    "Room for Growth",
			Message:  fmt.Sprintf("%d%% completion rate. Try setting smaller, achievable goals.", percent),
			Priority: model.InsightPriorityHigh,
		}}
	}
}

// analyzeCategoryPerformance compares per-category completion rates and calls
// out the strongest and weakest categories. Ties resolve to the category
// encountered first in declared order.
func (e *Engine) analyzeCategoryPerformance(_ time.Time, snap snapshot) []model.Insight {
	type categoryStat struct {
		category model.Category
		total    int
		rate     float64
	}

	var stats []categoryStat
	for _, cat := range model.Categories {
		var total, completed int
		for _, t := range snap.all {
			if t.Category != cat {
				continue
			}
			total++
			if t.Completed {
				completed++
			}
		}
		if total > 0 {
			stats = append(stats, categoryStat{
				category: cat,
				total:    total,
				rate:     float64(completed) / float64(total) * 100,
			})
		}
	}

	if len(stats) < 2 {
		return nil
	}

	best, worst := stats[0], stats[0]
	for _, s := range stats[1:] {
		if s.rate > best.rate {
			best = s
		}
		if s.rate < worst.rate {
			worst = s
		}
	}

	var insights []model.Insight
	if best.rate > championRate {
		insights = append(insights, model.Insight{
			Type:     "success",
			Icon:     "🏆",
			Title:    fmt.Sprintf("%s Champion", capitalize(string(best.category))),
			Message:  fmt.Sprintf("You excel at %s tasks with %d%% completion!", best.category, int(math.Round(best.rate))),
			Priority: model.InsightPriorityMedium,
		})
	}
	if worst.rate < focusAreaRate && worst.total >= focusAreaMin {
		insights = append(insights, model.Insight{
			Type:     "improvement",
			Icon:     "🎯",
			Title:    "Focus Area Identified",
			Message:  fmt.Sprintf("%s tasks need attention (%d%% completion).", capitalize(string(worst.category)), int(math.Round(worst.rate))),
			Priority: model.InsightPriorityHigh,
		})
	}
	return insights
}

// analyzeTaskSizes compares completion rates of large vs small tasks and flags
// very large pending tasks.
func (e *Engine) analyzeTaskSizes(_ time.Time, snap snapshot) []model.Insight {
	var largeTotal, largeCompleted, smallTotal, smallCompleted int
	for _, t := range snap.all {
		switch {
		case t.Reward > largeTaskReward:
			largeTotal++
			if t.Completed {
				largeCompleted++
			}
		case t.Reward <= smallTaskReward:
			smallTotal++
			if t.Completed {
				smallCompleted++
			}
		}
	}

	var insights []model.Insight
	if largeTotal > 0 && smallTotal > 0 {
		largeRate := float64(largeCompleted) / float64(largeTotal) * 100
		smallRate := float64(smallCompleted) / float64(smallTotal) * 100

		if smallRate > largeRate+sizeRateGap {
			insights = append(insights, model.Insight{
				Type:     "strategy",
				Icon:     "✂️",
				Title:    "Task Size Optimization",
				Message:  fmt.Sprintf("You complete %d%% of small vs %d%% of large tasks. Break big tasks into smaller chunks.", int(math.Round(smallRate)), int(math.Round(largeRate))),
				Priority: model.InsightPriorityHigh,
			})
		}
	}

	var huge int
	for _, t := range snap.pending {
		if t.Reward > hugeTaskReward {
			huge++
		}
	}
	if huge > 0 {
		insights = append(insights, model.Insight{
			Type:     "strategy",
			Icon:     "🧩",
			Title:    "Large Task Alert",
			Message:  fmt.Sprintf("You have %d task(s) worth >₹%d. Breaking these into smaller milestones could improve completion rates.", huge, hugeTaskReward),
			Priority: model.InsightPriorityMedium,
		})
	}
	return insights
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var bandNames = [4]string{"morning", "afternoon", "evening", "night"}

// timeBand maps an hour to its band index in bandNames order.
func timeBand(hour int) int {
	switch {
	case hour >= 6 && hour < 12:
		return 0 // morning
	case hour >= 12 && hour < 18:
		return 1 // afternoon
	case hour >= 18 && hour < 22:
		return 2 // evening
	default:
		return 3 // night
	}
}

// analyzeTimePatterns finds the weekday and time band with the most completions.
// Ties resolve to the lowest day index (Sunday first) and the earliest band in
// morning/afternoon/evening/night order.
func (e *Engine) analyzeTimePatterns(_ time.Time, snap snapshot) []model.Insight {
	var withTimestamp int
	var dayCounts [7]int
	var bandCounts [4]int

	for _, t := range snap.completed {
		if t.CompletedAt == nil {
			continue
		}
		withTimestamp++
		dayCounts[int(t.CompletedAt.Weekday())]++
		bandCounts[timeBand(t.CompletedAt.Hour())]++
	}

	if withTimestamp < e.cfg.TimePatternMin {
		return nil
	}

	peakDay, peakBand := 0, 0
	for i := 1; i < len(dayCounts); i++ {
		if dayCounts[i] > dayCounts[peakDay] {
			peakDay = i
		}
	}
	for i := 1; i < len(bandCounts); i++ {
		if bandCounts[i] > bandCounts[peakBand] {
			peakBand = i
		}
	}

	var insights []model.Insight
	if dayCounts[peakDay] >= peakCountMin {
		insights = append(insights, model.Insight{
			Type:     "pattern",
			Icon:     "📅",
			Title:    "Peak Performance Day",
			Message:  fmt.Sprintf("%s is your most productive day!", dayNames[peakDay]),
			Priority: model.InsightPriorityMedium,
		})
	}
	if bandCounts[peakBand] >= peakCountMin {
		insights = append(insights, model.Insight{
			Type:     "pattern",
			Icon:     "⏰",
			Title:    "Optimal Time Window",
			Message:  fmt.Sprintf("You're most productive in the %s. Schedule important tasks then.", bandNames[peakBand]),
			Priority: model.InsightPriorityMedium,
		})
	}
	return insights
}

// analyzeRecommendations emits actionable alerts: overdue tasks, high-value
// pending work, and recent completion streaks.
func (e *Engine) analyzeRecommendations(now time.Time, snap snapshot) []model.Insight {
	var insights []model.Insight

	var overdue int
	for _, t := range snap.pending {
		if t.DueDate != nil && t.DueDate.Before(now) {
			overdue++
		}
	}
	if overdue > 0 {
		insights = append(insights, model.Insight{
			Type:     "urgent",
			Icon:     "⚠️",
			Title:    "Overdue Tasks Alert",
			Message:  fmt.Sprintf("%d task(s) are overdue. Consider rescheduling or breaking them down.", overdue),
			Priority: model.InsightPriorityHigh,
		})
	}

	var highValue int
	for _, t := range snap.pending {
		if t.Reward > highValueReward {
			highValue++
		}
	}
	if highValue > 0 {
		insights = append(insights, model.Insight{
			Type:     "opportunity",
			Icon:     "💎",
			Title:    "High-Value Opportunities",
			Message:  fmt.Sprintf("%d high-reward task(s) pending. Big earnings await!", highValue),
			Priority: model.InsightPriorityMedium,
		})
	}

	var recent int
	for _, t := range snap.completed {
		at := t.CreatedAt
		if t.CompletedAt != nil {
			at = *t.CompletedAt
		}
		if now.Sub(at) <= e.cfg.RecentWindow {
			recent++
		}
	}
	if recent >= streakMin {
		insights = append(insights, model.Insight{
			Type:     "motivation",
			Icon:     "🔥",
			Title:    "On Fire!",
			Message:  fmt.Sprintf("%d tasks completed this week! Keep the momentum going!", recent),
			Priority: model.InsightPriorityLow,
		})
	}

	return insights
}

// roundedRate returns completed/total as a rounded percentage, guarding the
// zero denominator.
func roundedRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
