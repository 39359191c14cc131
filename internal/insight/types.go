package insight

import (
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// Config tunes the engine's thresholds. Zero values fall back to defaults.
type Config struct {
	// MaxInsights caps the ranked output length.
	MaxInsights int
	// FullAnalysisMin is the completed-task count required before the full
	// analyzer set runs; below it only basic insights are produced.
	FullAnalysisMin int
	// TimePatternMin is the completed-task count required before the peak-day
	// and peak-time analyzers run.
	TimePatternMin int
	// RecentWindow bounds the completion streak lookback.
	RecentWindow time.Duration
}

const (
	defaultMaxInsights     = 6
	defaultFullAnalysisMin = 3
	defaultTimePatternMin  = 3
	defaultRecentWindow    = 7 * 24 * time.Hour
)

func (c Config) withDefaults() Config {
	if c.MaxInsights <= 0 {
		c.MaxInsights = defaultMaxInsights
	}
	if c.FullAnalysisMin <= 0 {
		c.FullAnalysisMin = defaultFullAnalysisMin
	}
	if c.TimePatternMin <= 0 {
		c.TimePatternMin = defaultTimePatternMin
	}
	if c.RecentWindow <= 0 {
		c.RecentWindow = defaultRecentWindow
	}
	return c
}

// snapshot is the precomputed view of a user's task history shared by all
// analyzers. Analyzers never mutate it.
type snapshot struct {
	all       []model.Task
	completed []model.Task
	pending   []model.Task
}

func newSnapshot(tasks []model.Task) snapshot {
	snap := snapshot{all: tasks}
	for _, t := range tasks {
		if t.Completed {
			snap.completed = append(snap.completed, t)
		} else {
			snap.pending = append(snap.pending, t)
		}
	}
	return snap
}

// analyzer is one independent rule evaluated over the task snapshot.
// Each returns zero or more insights; the engine concatenates and ranks.
type analyzer func(now time.Time, snap snapshot) []model.Insight
