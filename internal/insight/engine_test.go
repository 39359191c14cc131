package insight_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/insight"
	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// now is Wednesday, May 1, 2024, 12:00 UTC for all cases.
var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func completedTask(category model.Category, reward int64, completedAt time.Time) model.Task {
	return model.Task{
		ID:          "t-completed",
		Title:       "done",
		Category:    category,
		Priority:    model.PriorityMedium,
		Reward:      reward,
		Completed:   true,
		CreatedAt:   completedAt.Add(-24 * time.Hour),
		CompletedAt: &completedAt,
	}
}

func pendingTask(category model.Category, reward int64, due *time.Time) model.Task {
	return model.Task{
		ID:        "t-pending",
		Title:     "todo",
		Category:  category,
		Priority:  model.PriorityMedium,
		Reward:    reward,
		CreatedAt: now.Add(-48 * time.Hour),
		DueDate:   due,
	}
}

func titles(insights []model.Insight) []string {
	out := make([]string, len(insights))
	for i, ins := range insights {
		out[i] = ins.Title
	}
	return out
}

func findByType(insights []model.Insight, typ string) []model.Insight {
	var out []model.Insight
	for _, ins := range insights {
		if ins.Type == typ {
			out = append(out, ins)
		}
	}
	return out
}

func TestGenerateEmptyHistory(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})

	got := engine.Generate(now, nil)

	if len(got) != 1 {
		t.Fatalf("expected exactly 1 insight, got %d: %v", len(got), titles(got))
	}
	if got[0].Type != "welcome" || got[0].Priority != model.InsightPriorityInfo {
		t.Errorf("unexpected welcome insight: %+v", got[0])
	}
}

func TestGenerateNoCompletions(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})

	tasks := []model.Task{
		pendingTask(model.CategoryWork, 100, nil),
		pendingTask(model.CategoryHealth, 50, nil),
	}
	got := engine.Generate(now, tasks)

	if len(got) != 1 {
		t.Fatalf("expected exactly 1 insight, got %d", len(got))
	}
	if got[0].Type != "motivation" {
		t.Errorf("expected motivation insight, got %q", got[0].Type)
	}
	if !strings.Contains(got[0].Message, "2 task(s)") {
		t.Errorf("message should reference pending count: %q", got[0].Message)
	}
}

func TestGenerateBasicTier(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})

	tasks := []model.Task{
		completedTask(model.CategoryWork, 150, now.Add(-2*time.Hour)),
		pendingTask(model.CategoryPersonal, 200, nil),
		pendingTask(model.CategoryHealth, 100, nil),
	}
	got := engine.Generate(now, tasks)

	if len(got) != 3 {
		t.Fatalf("expected 3 insights, got %d: %v", len(got), titles(got))
	}
	// Ranked: high (potential) before medium (earned) before info (greeting).
	if got[0].Title != "Potential Earnings" {
		t.Errorf("first insight = %q, want Potential Earnings", got[0].Title)
	}
	if !strings.Contains(got[0].Message, "₹300") {
		t.Errorf("potential earnings should sum pending rewards: %q", got[0].Message)
	}
	if got[1].Title != "Earning Progress" {
		t.Errorf("second insight = %q, want Earning Progress", got[1].Title)
	}
	if !strings.Contains(got[1].Message, "₹150") {
		t.Errorf("earning progress should sum completed rewards: %q", got[1].Message)
	}
	if got[2].Priority != model.InsightPriorityInfo {
		t.Errorf("last insight priority = %q, want info", got[2].Priority)
	}
}

func TestGeneratePeakDayAndTime(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})

	// Five completions, all Tuesday morning.
	completedAt := time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC)
	var tasks []model.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, completedTask(model.CategoryWork, 50, completedAt))
	}

	got := engine.Generate(now, tasks)

	patterns := findByType(got, "pattern")
	if len(patterns) != 2 {
		t.Fatalf("expected exactly 2 pattern insights, got %d: %v", len(patterns), titles(got))
	}
	if !strings.Contains(patterns[0].Message, "Tuesday") {
		t.Errorf("peak day should reference Tuesday: %q", patterns[0].Message)
	}
	if !strings.Contains(patterns[1].Message, "morning") {
		t.Errorf("peak time should reference morning: %q", patterns[1].Message)
	}
}

func TestGenerateCompletionRateBuckets(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})
	completedAt := now.Add(-30 * 24 * time.Hour) // outside streak window

	tests := []struct {
		name      string
		completed int
		pending   int
		wantTitle string
	}{
		{name: "Excellent at 80 percent", completed: 4, pending: 1, wantTitle: "Excellent Performance!"},
		{name: "Good at 60 percent", completed: 3, pending: 2, wantTitle: "Good Progress"},
		{name: "Needs improvement below 60", completed: 3, pending: 3, wantTitle: "Room for Growth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tasks []model.Task
			for i := 0; i < tt.completed; i++ {
				tasks = append(tasks, completedTask(model.CategoryWork, 150, completedAt))
			}
			for i := 0; i < tt.pending; i++ {
				tasks = append(tasks, pendingTask(model.CategoryWork, 150, nil))
			}

			got := engine.Generate(now, tasks)
			if len(got) == 0 || got[0].Title != tt.wantTitle {
				t.Errorf("first insight = %v, want %q", titles(got), tt.wantTitle)
			}
		})
	}
}

func TestGenerateCategoryChampionAndFocus(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})
	completedAt := now.Add(-30 * 24 * time.Hour)

	tasks := []model.Task{
		completedTask(model.CategoryWork, 150, completedAt),
		completedTask(model.CategoryWork, 150, completedAt),
		completedTask(model.CategoryWork, 150, completedAt),
		pendingTask(model.CategoryHealth, 150, nil),
		pendingTask(model.CategoryHealth, 150, nil),
	}
	got := engine.Generate(now, tasks)

	var champion, focus bool
	for _, ins := range got {
		if ins.Title == "Work Champion" {
			champion = true
		}
		if ins.Title == "Focus Area Identified" {
			focus = true
			if !strings.Contains(ins.Message, "Health") {
				t.Errorf("focus area should name health: %q", ins.Message)
			}
		}
	}
	if !champion {
		t.Errorf("expected a champion insight: %v", titles(got))
	}
	if !focus {
		t.Errorf("expected a focus area insight: %v", titles(got))
	}
}

func TestGenerateSingleCategoryNoComparison(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})
	completedAt := now.Add(-30 * 24 * time.Hour)

	// Only one category present: no champion/focus pair possible, and no
	// zero-denominator panic for the absent categories.
	var tasks []model.Task
	for i := 0; i < 4; i++ {
		tasks = append(tasks, completedTask(model.CategoryOther, 0, completedAt))
	}

	got := engine.Generate(now, tasks)
	for _, ins := range got {
		if ins.Title == "Focus Area Identified" || strings.HasSuffix(ins.Title, "Champion") {
			t.Errorf("unexpected category comparison insight: %q", ins.Title)
		}
	}
}

func TestGenerateOverdueDetection(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})
	completedAt := now.Add(-30 * 24 * time.Hour)

	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	base := []model.Task{
		completedTask(model.CategoryWork, 150, completedAt),
		completedTask(model.CategoryWork, 150, completedAt),
		completedTask(model.CategoryWork, 150, completedAt),
	}

	t.Run("Past due date triggers alert", func(t *testing.T) {
		got := engine.Generate(now, append(base, pendingTask(model.CategoryWork, 100, &yesterday)))
		if len(findByType(got, "urgent")) != 1 {
			t.Errorf("expected one overdue alert: %v", titles(got))
		}
	})

	t.Run("Future due date does not", func(t *testing.T) {
		got := engine.Generate(now, append(base, pendingTask(model.CategoryWork, 100, &tomorrow)))
		if len(findByType(got, "urgent")) != 0 {
			t.Errorf("unexpected overdue alert: %v", titles(got))
		}
	})
}

func TestGenerateRankingAndCap(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})

	// A busy history designed to trip most analyzers at once.
	completedAt := time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC) // Tuesday morning, inside streak window
	yesterday := now.Add(-24 * time.Hour)

	var tasks []model.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, completedTask(model.CategoryWork, 50, completedAt))
	}
	tasks = append(tasks,
		pendingTask(model.CategoryHealth, 600, &yesterday),
		pendingTask(model.CategoryHealth, 600, &yesterday),
	)

	got := engine.Generate(now, tasks)

	if len(got) != 6 {
		t.Fatalf("expected output capped at 6, got %d: %v", len(got), titles(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Priority.Rank() > got[i-1].Priority.Rank() {
			t.Errorf("insights not ranked: %q (%s) after %q (%s)",
				got[i].Title, got[i].Priority, got[i-1].Title, got[i-1].Priority)
		}
	}
	if got[0].Priority != model.InsightPriorityHigh {
		t.Errorf("top insight priority = %q, want high", got[0].Priority)
	}
}

func TestGenerateTimePatternThreshold(t *testing.T) {
	// Richer variant: require 5 completions before time patterns appear.
	engine := insight.NewEngine(insight.Config{TimePatternMin: 5})
	completedAt := time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC)

	var tasks []model.Task
	for i := 0; i < 4; i++ {
		tasks = append(tasks, completedTask(model.CategoryWork, 50, completedAt))
	}

	got := engine.Generate(now, tasks)
	if len(findByType(got, "pattern")) != 0 {
		t.Errorf("time patterns should need 5 completions: %v", titles(got))
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	engine := insight.NewEngine(insight.Config{})

	completedAt := now.Add(-2 * time.Hour)
	tasks := []model.Task{
		completedTask(model.CategoryWork, 100, completedAt),
		pendingTask(model.CategoryHealth, 200, nil),
	}
	snapshot := make([]model.Task, len(tasks))
	copy(snapshot, tasks)

	engine.Generate(now, tasks)

	for i := range tasks {
		if tasks[i].Completed != snapshot[i].Completed || tasks[i].Reward != snapshot[i].Reward {
			t.Errorf("task %d mutated by Generate", i)
		}
	}
}
