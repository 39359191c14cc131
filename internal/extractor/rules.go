package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/pkg/datemath"
)

const weekdayAlt = "monday|tuesday|wednesday|thursday|friday|saturday|sunday"

// Overrides carries the externally configurable pieces of the rule table.
// Zero-value fields keep the built-in defaults.
type Overrides struct {
	CategoryKeywords map[string][]string
	UrgencyKeywords  map[string][]string
	StripVerbs       []string
	Strategy         string
}

// DefaultRules returns the built-in rule table: rupee reward patterns,
// by/due date patterns, and the fixed category/urgency keyword sets.
func DefaultRules() Rules {
	return NewRules(Overrides{})
}

// NewRules builds the rule table, applying any overrides on top of defaults.
func NewRules(o Overrides) Rules {
	r := Rules{
		RewardPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:₹|rs\.?|rupees?)\s*(\d+)`),
			regexp.MustCompile(`(?i)(\d+)\s*(?:₹|rs\.?|rupees?)`),
			regexp.MustCompile(`(?i)\bfor\s+(\d+)`),
			regexp.MustCompile(`(?i)\bworth\s+(\d+)`),
		},
		DatePatterns: []DatePattern{
			{
				Pattern: regexp.MustCompile(`(?i)\b(?:by|due)\s+(today|tomorrow)\b`),
				Resolve: func(p *datemath.Parser, capture string, base time.Time) (time.Time, error) {
					return p.Relative(capture, base)
				},
			},
			{
				Pattern: regexp.MustCompile(`(?i)\b(?:by|due)\s+(` + weekdayAlt + `)\b`),
				Resolve: func(p *datemath.Parser, capture string, base time.Time) (time.Time, error) {
					return p.NextWeekday(capture, base)
				},
			},
			{
				Pattern: regexp.MustCompile(`(?i)\bby\s+(\d{1,2}/\d{1,2}/\d{4})`),
				Resolve: func(p *datemath.Parser, capture string, base time.Time) (time.Time, error) {
					return p.MonthDayYear(capture)
				},
			},
			{
				Pattern: regexp.MustCompile(`(?i)\bby\s+(\d{1,2}/\d{1,2})\b`),
				Resolve: func(p *datemath.Parser, capture string, base time.Time) (time.Time, error) {
					return p.MonthDay(capture, base)
				},
			},
		},
		CategoryKeywords: []CategoryKeywords{
			{model.CategoryWork, []string{"work", "office", "meeting", "report", "presentation", "project", "client", "business", "email", "call"}},
			{model.CategoryPersonal, []string{"clean", "laundry", "shopping", "groceries", "home", "family", "friend", "personal", "buy"}},
			{model.CategoryHealth, []string{"workout", "exercise", "gym", "run", "walk", "doctor", "medicine", "health", "fitness", "yoga"}},
			{model.CategoryLearning, []string{"study", "learn", "read", "course", "tutorial", "practice", "research", "book", "skill"}},
		},
		UrgencyKeywords: []UrgencyKeywords{
			{model.PriorityHigh, []string{"urgent", "asap", "immediately", "critical", "important", "priority"}},
			{model.PriorityLow, []string{"later", "sometime", "eventually", "when possible", "low priority"}},
		},
		StripVerbs: []string{"finish", "complete", "do", "make", "create", "write", "send"},
		Strategy:   StrategySubstring,
	}

	for key, kw := range o.CategoryKeywords {
		cat := model.ParseCategory(key)
		for i := range r.CategoryKeywords {
			if r.CategoryKeywords[i].Category == cat {
				r.CategoryKeywords[i].Keywords = kw
			}
		}
	}
	for key, kw := range o.UrgencyKeywords {
		prio := model.ParsePriority(key)
		for i := range r.UrgencyKeywords {
			if r.UrgencyKeywords[i].Priority == prio {
				r.UrgencyKeywords[i].Keywords = kw
			}
		}
	}
	if len(o.StripVerbs) > 0 {
		r.StripVerbs = o.StripVerbs
	}
	if o.Strategy == string(StrategyStem) {
		r.Strategy = StrategyStem
	}

	r.stripPatterns = r.compileStripPatterns()
	return r
}

// compileStripPatterns builds the ordered list of patterns removed from the
// input when deriving the title: reward mentions, date mentions, urgency words.
func (r Rules) compileStripPatterns() []*regexp.Regexp {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:\bfor\s+)?(?:₹|rs\.?|rupees?)\s*\d+`),
		regexp.MustCompile(`(?i)\d+\s*(?:₹|rs\.?|rupees?)`),
		regexp.MustCompile(`(?i)\bfor\s+\d+`),
		regexp.MustCompile(`(?i)\bworth\s+\d+`),
		regexp.MustCompile(`(?i)\b(?:by|due)\s+(?:today|tomorrow|` + weekdayAlt + `)\b`),
		regexp.MustCompile(`(?i)\bby\s+\d{1,2}/\d{1,2}(?:/\d{4})?`),
	}

	var urgencyWords []string
	for _, bucket := range r.UrgencyKeywords {
		for _, kw := range bucket.Keywords {
			urgencyWords = append(urgencyWords, regexp.QuoteMeta(kw))
		}
	}
	if len(urgencyWords) > 0 {
		patterns = append(patterns,
			regexp.MustCompile(`(?i)\b(?:`+strings.Join(urgencyWords, "|")+`)\b`))
	}

	return patterns
}
