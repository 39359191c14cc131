package extractor

import (
	"regexp"
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/pkg/datemath"
)

// Strategy selects how category keywords are matched against the input.
type Strategy string

const (
	// StrategySubstring matches keywords as plain case-insensitive substrings.
	StrategySubstring Strategy = "substring"
	// StrategyStem tokenizes the input and compares Snowball-stemmed tokens
	// against stemmed keywords, so "studying" matches the "study" keyword.
	StrategyStem Strategy = "stem"
)

// DateResolver converts a date pattern's first capture group into an absolute
// date using the shared datemath parser.
type DateResolver func(p *datemath.Parser, capture string, base time.Time) (time.Time, error)

// DatePattern pairs a compiled pattern with its resolver. Patterns are tried
// in declaration order; the first match wins.
type DatePattern struct {
	Pattern *regexp.Regexp
	Resolve DateResolver
}

// CategoryKeywords binds one category to its keyword list. Order in the rules
// table is the match-priority order.
type CategoryKeywords struct {
	Category model.Category
	Keywords []string
}

// UrgencyKeywords binds one priority bucket to its keyword list.
type UrgencyKeywords struct {
	Priority model.Priority
	Keywords []string
}

// Rules is the full configuration table consumed by the Extractor. Every field
// is data, not code: callers can override keyword lists or pattern order
// without touching the extraction algorithm.
type Rules struct {
	RewardPatterns   []*regexp.Regexp
	DatePatterns     []DatePattern
	CategoryKeywords []CategoryKeywords
	UrgencyKeywords  []UrgencyKeywords
	StripVerbs       []string
	Strategy         Strategy

	// stripPatterns are applied to the raw input when cleaning the title.
	stripPatterns []*regexp.Regexp
}
