package extractor_test

import (
	"testing"
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/extractor"
	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/pkg/datemath"
)

// base is Wednesday, May 1, 2024, 15:30 UTC for all date-sensitive cases.
var base = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newExtractor(t *testing.T, o extractor.Overrides) *extractor.Extractor {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return extractor.New(extractor.NewRules(o), dates)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	dt := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &dt
}

func TestExtract(t *testing.T) {
	e := newExtractor(t, extractor.Overrides{})

	tests := []struct {
		name  string
		input string
		want  model.TaskDraft
	}{
		{
			name:  "Full sentence with reward weekday and urgency",
			input: "Finish quarterly report for 400 by friday urgent",
			want: model.TaskDraft{
				Title:    "quarterly report",
				Category: model.CategoryWork,
				Priority: model.PriorityHigh,
				DueDate:  datePtr(2024, 5, 3),
				Reward:   400,
			},
		},
		{
			name:  "Empty input",
			input: "",
			want: model.TaskDraft{
				Title:    "New Task",
				Category: model.CategoryOther,
				Priority: model.PriorityMedium,
			},
		},
		{
			name:  "No recognizable cues",
			input: "water the plants",
			want: model.TaskDraft{
				Title:    "water the plants",
				Category: model.CategoryOther,
				Priority: model.PriorityMedium,
			},
		},
		{
			name:  "Currency symbol prefix",
			input: "buy groceries ₹250",
			want: model.TaskDraft{
				Title:    "buy groceries",
				Category: model.CategoryPersonal,
				Priority: model.PriorityMedium,
				Reward:   250,
			},
		},
		{
			name:  "Amount before currency word",
			input: "morning yoga 100 rupees",
			want: model.TaskDraft{
				Title:    "morning yoga",
				Category: model.CategoryHealth,
				Priority: model.PriorityMedium,
				Reward:   100,
			},
		},
		{
			name:  "Worth amount and low urgency",
			input: "clean the garage worth 350 sometime",
			want: model.TaskDraft{
				Title:    "clean the garage",
				Category: model.CategoryPersonal,
				Priority: model.PriorityLow,
				Reward:   350,
			},
		},
		{
			name:  "Due tomorrow",
			input: "send the report due tomorrow",
			want: model.TaskDraft{
				Title:    "the report",
				Category: model.CategoryWork,
				Priority: model.PriorityMedium,
				DueDate:  datePtr(2024, 5, 2),
			},
		},
		{
			name:  "By today resolves to calendar today",
			input: "do laundry by today",
			want: model.TaskDraft{
				Title:    "laundry",
				Category: model.CategoryPersonal,
				Priority: model.PriorityMedium,
				DueDate:  datePtr(2024, 5, 1),
			},
		},
		{
			name:  "Same weekday advances a full week",
			input: "practice guitar by wednesday",
			want: model.TaskDraft{
				Title:    "practice guitar",
				Category: model.CategoryLearning,
				Priority: model.PriorityMedium,
				DueDate:  datePtr(2024, 5, 8),
			},
		},
		{
			name:  "Explicit full date literal",
			input: "book flights by 12/25/2024",
			want: model.TaskDraft{
				Title:    "book flights",
				Category: model.CategoryLearning,
				Priority: model.PriorityMedium,
				DueDate:  datePtr(2024, 12, 25),
			},
		},
		{
			name:  "Short date literal assumes current year",
			input: "renew passport by 6/15",
			want: model.TaskDraft{
				Title:    "renew passport",
				Category: model.CategoryOther,
				Priority: model.PriorityMedium,
				DueDate:  datePtr(2024, 6, 15),
			},
		},
		{
			name:  "Only cues leaves placeholder title",
			input: "urgent for 500 by friday",
			want: model.TaskDraft{
				Title:    "New Task",
				Category: model.CategoryOther,
				Priority: model.PriorityHigh,
				DueDate:  datePtr(2024, 5, 3),
				Reward:   500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(base, tt.input)

			if got.Title != tt.want.Title {
				t.Errorf("Title = %q, want %q", got.Title, tt.want.Title)
			}
			if got.Category != tt.want.Category {
				t.Errorf("Category = %q, want %q", got.Category, tt.want.Category)
			}
			if got.Priority != tt.want.Priority {
				t.Errorf("Priority = %q, want %q", got.Priority, tt.want.Priority)
			}
			if got.Reward != tt.want.Reward {
				t.Errorf("Reward = %d, want %d", got.Reward, tt.want.Reward)
			}
			switch {
			case tt.want.DueDate == nil && got.DueDate != nil:
				t.Errorf("DueDate = %v, want absent", got.DueDate)
			case tt.want.DueDate != nil && got.DueDate == nil:
				t.Errorf("DueDate absent, want %v", tt.want.DueDate)
			case tt.want.DueDate != nil && !got.DueDate.Equal(*tt.want.DueDate):
				t.Errorf("DueDate = %v, want %v", got.DueDate, tt.want.DueDate)
			}
		})
	}
}

func TestExtractRewardFirstMatchWins(t *testing.T) {
	e := newExtractor(t, extractor.Overrides{})

	// The currency-prefixed pattern outranks "for <digits>" even though
	// "for 200" appears earlier in the sentence.
	got := e.Extract(base, "pay for 200 then collect rs 50")
	if got.Reward != 50 {
		t.Errorf("Reward = %d, want 50 (currency pattern has priority)", got.Reward)
	}
}

func TestExtractNumberIsNotADate(t *testing.T) {
	e := newExtractor(t, extractor.Overrides{})

	got := e.Extract(base, "prepare slides for 400")
	if got.Reward != 400 {
		t.Errorf("Reward = %d, want 400", got.Reward)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want absent (amount must not become a date)", got.DueDate)
	}
}

func TestExtractUnresolvableDateLiteral(t *testing.T) {
	e := newExtractor(t, extractor.Overrides{})

	// Pattern matches but month 13 cannot resolve; the draft must still be
	// produced with the date absent.
	got := e.Extract(base, "file taxes by 13/40/2024")
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want absent", got.DueDate)
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := newExtractor(t, extractor.Overrides{})
	input := "Finish quarterly report for 400 by friday urgent"

	first := e.Extract(base, input)
	second := e.Extract(base, input)

	if first.Title != second.Title || first.Reward != second.Reward ||
		first.Category != second.Category || first.Priority != second.Priority {
		t.Errorf("repeated extraction differs: %+v vs %+v", first, second)
	}
}

func TestExtractStemStrategy(t *testing.T) {
	substr := newExtractor(t, extractor.Overrides{})
	stemmed := newExtractor(t, extractor.Overrides{Strategy: "stem"})

	// "meet" is not a substring of any keyword, but stems to the same root
	// as the "meeting" keyword.
	input := "meet with investors"

	if got := substr.Extract(base, input).Category; got != model.CategoryOther {
		t.Errorf("substring strategy Category = %q, want other", got)
	}
	if got := stemmed.Extract(base, input).Category; got != model.CategoryWork {
		t.Errorf("stem strategy Category = %q, want work", got)
	}
}

func TestExtractKeywordOverrides(t *testing.T) {
	e := newExtractor(t, extractor.Overrides{
		CategoryKeywords: map[string][]string{"work": {"standup"}},
	})

	if got := e.Extract(base, "daily standup notes").Category; got != model.CategoryWork {
		t.Errorf("Category = %q, want work via overridden keyword", got)
	}
	// Default work keywords were replaced, not merged.
	if got := e.Extract(base, "quarterly report").Category; got != model.CategoryOther {
		t.Errorf("Category = %q, want other after keyword override", got)
	}
}
