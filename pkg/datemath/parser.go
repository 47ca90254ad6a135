package datemath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the canonical deadline representation.
const DateFormat = "2006-01-02"

const day = 24 * time.Hour

var (
	inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser formats and parses calendar dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Format renders the calendar date of t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) Format(t time.Time) string {
	return t.In(p.location).Format(DateFormat)
}

// ParseDate parses a YYYY-MM-DD string into midnight of that day.
func (p *Parser) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(value), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// DaysRemaining returns floor((date - now) in days) where date is the
// midnight named by formatted. The result is negative once the day has passed.
func (p *Parser) DaysRemaining(formatted string, now time.Time) (int, error) {
	deadline, err := p.ParseDate(formatted)
	if err != nil {
		return 0, err
	}
	return p.DaysUntil(deadline, now), nil
}

// DaysUntil is DaysRemaining for a date that is already a time.Time. Only
// date's calendar day in the parser's timezone counts. Both sides are compared
// as wall-clock time, so DST shifts never move the result.
func (p *Parser) DaysUntil(date, now time.Time) int {
	d := date.In(p.location)
	local := now.In(p.location)
	wallNow := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
	wallDeadline := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	diff := wallDeadline.Sub(wallNow)
	return int(math.Floor(float64(diff) / float64(day)))
}

// Today returns midnight of now's calendar day.
func (p *Parser) Today(now time.Time) time.Time {
	return p.StartOfDay(now)
}

// Resolve accepts either a YYYY-MM-DD date or a relative phrase such as
// "tomorrow", "in 3 days" or "next friday" and returns midnight of that day.
func (p *Parser) Resolve(input string, baseTime time.Time) (time.Time, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if isoDatePattern.MatchString(value) {
		return p.ParseDate(value)
	}

	switch value {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(value, "in ") {
		return p.parseInDuration(value, baseTime)
	}
	if strings.HasPrefix(value, "next ") {
		return p.parseNextWeekday(value, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", input)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid amount %q: %w", matches[1], err)
	}

	start := p.StartOfDay(baseTime)
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return start.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return start.AddDate(0, 0, amount*7), nil
	default:
		return start.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles patterns like "next monday". The same weekday
// resolves to one week later.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	name := strings.TrimSpace(strings.TrimPrefix(relative, "next "))
	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", name)
	}

	start := p.StartOfDay(baseTime)
	daysUntil := int(target - start.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return start.AddDate(0, 0, daysUntil), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
