package extractor

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/kljensen/snowball/english"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/pkg/datemath"
)

// DefaultTitle is used when stripping leaves nothing of the input.
const DefaultTitle = "New Task"

// Extractor turns a free-text sentence into a structured TaskDraft.
// It is a pure function of (now, input) and never fails: unmatched fields fall
// back to documented defaults.
type Extractor struct {
	rules Rules
	dates *datemath.Parser
}

// New creates an Extractor from a rule table and a date parser.
func New(rules Rules, dates *datemath.Parser) *Extractor {
	return &Extractor{rules: rules, dates: dates}
}

// Extract parses input into a TaskDraft. Each field is extracted independently
// with first-match-wins semantics over its pattern list.
func (e *Extractor) Extract(now time.Time, input string) model.TaskDraft {
	return model.TaskDraft{
		Title:    e.extractTitle(input),
		Category: e.extractCategory(input),
		Priority: e.extractPriority(input),
		Reward:   e.extractReward(input),
		DueDate:  e.extractDueDate(now, input),
	}
}

func (e *Extractor) extractReward(input string) int64 {
	for _, pattern := range e.rules.RewardPatterns {
		match := pattern.FindStringSubmatch(input)
		if match == nil {
			continue
		}
		amount, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil || amount < 0 {
			return 0
		}
		return amount
	}
	return 0
}

func (e *Extractor) extractDueDate(now time.Time, input string) *time.Time {
	for _, dp := range e.rules.DatePatterns {
		match := dp.Pattern.FindStringSubmatch(input)
		if match == nil {
			continue
		}
		// First matching pattern consumes the date slot even if its capture
		// resolves to nothing (e.g. "by 13/40/2024").
		resolved, err := dp.Resolve(e.dates, match[1], now)
		if err != nil {
			return nil
		}
		return &resolved
	}
	return nil
}

func (e *Extractor) extractCategory(input string) model.Category {
	lower := strings.ToLower(input)

	if e.rules.Strategy == StrategyStem {
		stemmed := stemSet(tokenize(lower))
		for _, ck := range e.rules.CategoryKeywords {
			for _, kw := range ck.Keywords {
				if stemmed[english.Stem(kw, false)] {
					return ck.Category
				}
			}
		}
		return model.CategoryOther
	}

	for _, ck := range e.rules.CategoryKeywords {
		for _, kw := range ck.Keywords {
			if strings.Contains(lower, kw) {
				return ck.Category
			}
		}
	}
	return model.CategoryOther
}

func (e *Extractor) extractPriority(input string) model.Priority {
	lower := strings.ToLower(input)
	for _, bucket := range e.rules.UrgencyKeywords {
		for _, kw := range bucket.Keywords {
			if strings.Contains(lower, kw) {
				return bucket.Priority
			}
		}
	}
	return model.PriorityMedium
}

func (e *Extractor) extractTitle(input string) string {
	title := input
	for _, pattern := range e.rules.stripPatterns {
		title = pattern.ReplaceAllString(title, "")
	}

	title = strings.Join(strings.Fields(title), " ")

	// Strip one leading verb from the closed set, if present.
	if first, rest, ok := strings.Cut(title, " "); ok {
		for _, verb := range e.rules.StripVerbs {
			if strings.EqualFold(first, verb) {
				title = rest
				break
			}
		}
	}

	if title == "" {
		return DefaultTitle
	}
	return title
}

// tokenize splits the input into lower-case word tokens.
func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// stemSet stems every token and returns a membership set.
func stemSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[english.Stem(tok, false)] = true
	}
	return set
}
