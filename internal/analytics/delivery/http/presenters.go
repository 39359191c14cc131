package http

import (
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/analytics"
	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// --- Response DTOs ---

type categoryStatResp struct {
	Category  string `json:"category"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Rate      int    `json:"rate"`
}

type recentTaskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Reward      int64      `json:"reward"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type statsResp struct {
	TotalTasks     int                `json:"total_tasks"`
	CompletedTasks int                `json:"completed_tasks"`
	TotalEarnings  int64              `json:"total_earnings"`
	SuccessRate    int                `json:"success_rate"`
	CategoryStats  []categoryStatResp `json:"category_stats"`
	RecentTasks    []recentTaskResp   `json:"recent_tasks"`
}

func (h *handler) newStatsResp(out analytics.StatsOutput) statsResp {
	stats := make([]categoryStatResp, len(out.CategoryStats))
	for i, s := range out.CategoryStats {
		stats[i] = categoryStatResp(s)
	}
	recent := make([]recentTaskResp, len(out.RecentTasks))
	for i, t := range out.RecentTasks {
		recent[i] = recentTaskResp{
			ID:          t.ID,
			Title:       t.Title,
			Category:    string(t.Category),
			Reward:      t.Reward,
			CompletedAt: t.CompletedAt,
		}
	}
	return statsResp{
		TotalTasks:     out.TotalTasks,
		CompletedTasks: out.CompletedTasks,
		TotalEarnings:  out.TotalEarnings,
		SuccessRate:    out.SuccessRate,
		CategoryStats:  stats,
		RecentTasks:    recent,
	}
}

type insightResp struct {
	Type     string `json:"type"`
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

type insightsResp struct {
	Insights []insightResp `json:"insights"`
}

func (h *handler) newInsightsResp(out analytics.InsightsOutput) insightsResp {
	insights := make([]insightResp, len(out.Insights))
	for i, ins := range out.Insights {
		insights[i] = newInsightResp(ins)
	}
	return insightsResp{Insights: insights}
}

func newInsightResp(ins model.Insight) insightResp {
	return insightResp{
		Type:     ins.Type,
		Icon:     ins.Icon,
		Title:    ins.Title,
		Message:  ins.Message,
		Priority: string(ins.Priority),
	}
}

type categoryEarningsResp struct {
	Count       int   `json:"count"`
	TotalReward int64 `json:"total_reward"`
}

type timeSlotsResp struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`
}

type patternsResp struct {
	DailyCompletion     map[string]int                  `json:"daily_completion"`
	CategoryPerformance map[string]categoryEarningsResp `json:"category_performance"`
	TimePatterns        timeSlotsResp                   `json:"time_patterns"`
}

func (h *handler) newPatternsResp(out analytics.PatternsOutput) patternsResp {
	perf := make(map[string]categoryEarningsResp, len(out.CategoryPerformance))
	for cat, p := range out.CategoryPerformance {
		perf[cat] = categoryEarningsResp(p)
	}
	return patternsResp{
		DailyCompletion:     out.DailyCompletion,
		CategoryPerformance: perf,
		TimePatterns:        timeSlotsResp(out.TimePatterns),
	}
}
