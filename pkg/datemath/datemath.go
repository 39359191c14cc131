package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date words and explicit date literals to absolute
// time.Time values in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Relative resolves "today" or "tomorrow" against baseTime.
func (p *Parser) Relative(day string, baseTime time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(day)) {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	}
	return time.Time{}, fmt.Errorf("unknown relative day: %q", day)
}

// NextWeekday resolves a weekday name to its next occurrence strictly after
// baseTime's day. When the named weekday equals the base weekday the result is
// a full week ahead, never the base day itself.
func (p *Parser) NextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	targetWeekday, ok := weekdays[strings.ToLower(strings.TrimSpace(dayName))]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// MonthDayYear parses an explicit "MM/DD/YYYY" literal.
func (p *Parser) MonthDayYear(literal string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(literal), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date literal: %q", literal)
	}
	return p.buildDate(parts[0], parts[1], parts[2])
}

// MonthDay parses an explicit "MM/DD" literal, assuming baseTime's calendar year.
func (p *Parser) MonthDay(literal string, baseTime time.Time) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(literal), "/")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid date literal: %q", literal)
	}
	year := strconv.Itoa(baseTime.In(p.location).Year())
	return p.buildDate(parts[0], parts[1], year)
}

func (p *Parser) buildDate(monthStr, dayStr, yearStr string) (time.Time, error) {
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month: %q", monthStr)
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid day: %q", dayStr)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year: %q", yearStr)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
