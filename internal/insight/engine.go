package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// Engine derives short human-readable insights from a user's task history.
// Generate is pure: it performs no I/O and never mutates its input.
type Engine struct {
	cfg       Config
	analyzers []analyzer
}

// NewEngine creates an Engine with the given thresholds.
func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg.withDefaults()}
	e.analyzers = []analyzer{
		e.analyzeCompletionRate,
		e.analyzeCategoryPerformance,
		e.analyzeTaskSizes,
		e.analyzeTimePatterns,
		e.analyzeRecommendations,
	}
	return e
}

// Generate produces the ranked insight list for the given task snapshot.
// Output is capped at cfg.MaxInsights after a stable sort by priority.
func (e *Engine) Generate(now time.Time, tasks []model.Task) []model.Insight {
	snap := newSnapshot(tasks)

	var insights []model.Insight
	switch {
	case len(snap.all) == 0:
		insights = []model.Insight{welcomeInsight()}
	case len(snap.completed) == 0:
		insights = []model.Insight{motivationInsight(len(snap.pending))}
	case len(snap.completed) < e.cfg.FullAnalysisMin:
		insights = append([]model.Insight{earlyProgressInsight(len(snap.completed))}, e.basicInsights(snap)...)
	default:
		for _, analyze := range e.analyzers {
			insights = append(insights, analyze(now, snap)...)
		}
	}

	rank(insights)
	if len(insights) > e.cfg.MaxInsights {
		insights = insights[:e.cfg.MaxInsights]
	}
	return insights
}

// rank orders insights descending by priority, preserving analyzer order
// among equals.
func rank(insights []model.Insight) {
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority.Rank() > insights[j].Priority.Rank()
	})
}

func welcomeInsight() model.Insight {
	return model.Insight{
		Type:     "welcome",
		Icon:     "🚀",
		Title:    "Welcome to QuickBucks!",
		Message:  "Start adding tasks to unlock AI-powered productivity insights.",
		Priority: model.InsightPriorityInfo,
	}
}

func motivationInsight(pending int) model.Insight {
	return model.Insight{
		Type:     "motivation",
		Icon:     "💪",
		Title:    "Time to Get Started!",
		Message:  fmt.Sprintf("You have %d task(s) waiting. Complete your first task to unlock detailed AI insights!", pending),
		Priority: model.InsightPriorityMedium,
	}
}

func earlyProgressInsight(completed int) model.Insight {
	return model.Insight{
		Type:     "welcome",
		Icon:     "👋",
		Title:    "Great Start!",
		Message:  fmt.Sprintf("You've completed %d task(s)! Complete a few more to unlock advanced AI productivity insights.", completed),
		Priority: model.InsightPriorityInfo,
	}
}

// basicInsights summarizes earnings when there is not yet enough history for
// the full analyzer set.
func (e *Engine) basicInsights(snap snapshot) []model.Insight {
	var insights []model.Insight

	if len(snap.completed) > 0 {
		var earned int64
		for _, t := range snap.completed {
			earned += t.Reward
		}
		insights = append(insights, model.Insight{
			Type:     "success",
			Icon:     "💰",
			Title:    "Earning Progress",
			Message:  fmt.Sprintf("You've earned ₹%d so far! Keep completing tasks to boost your earnings.", earned),
			Priority: model.InsightPriorityMedium,
		})
	}

	if len(snap.pending) > 0 {
		var potential int64
		for _, t := range snap.pending {
			potential += t.Reward
		}
		insights = append(insights, model.Insight{
			Type:     "opportunity",
			Icon:     "🎯",
			Title:    "Potential Earnings",
			Message:  fmt.Sprintf("Complete your %d pending task(s) to earn ₹%d more!", len(snap.pending), potential),
			Priority: model.InsightPriorityHigh,
		})
	}

	return insights
}
