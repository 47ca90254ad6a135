package checklist

import (
	"regexp"
	"strings"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Captures indent, checkbox state, and text.
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^(\s*)- \[([ xX])\] (.+)$`
)

var (
	fencedCodeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern      = regexp.MustCompile("`[^`]+`")
)

type Service interface {
	// Build renders items as an unchecked markdown checklist, one line each.
	Build(items []string) string

	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// GetStats calculates checklist statistics
	GetStats(content string) Stats

	// IsFullyCompleted checks if all checkboxes are checked
	IsFullyCompleted(content string) bool
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(CheckboxPattern),
	}
}

// sanitizeContent removes code blocks so checkboxes inside code examples are not counted.
func sanitizeContent(content string) string {
	sanitized := fencedCodeBlockPattern.ReplaceAllString(content, "")
	return inlineCodePattern.ReplaceAllString(sanitized, "")
}

func (s *service) Build(items []string) string {
	var b strings.Builder
	for _, item := range items {
		// A label must stay on its line or it would split the checkbox.
		label := strings.Join(strings.Fields(item), " ")
		if label == "" {
			label = "(untitled)"
		}
		b.WriteString(CheckboxUnchecked)
		b.WriteByte(' ')
		b.WriteString(label)
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *service) ParseCheckboxes(content string) []Checkbox {
	sanitized := sanitizeContent(content)

	matches := s.pattern.FindAllStringSubmatch(sanitized, -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for i, match := range matches {
		if len(match) != 4 {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    strings.TrimSpace(match[3]),
			RawLine: match[0],
		})
	}

	return checkboxes
}

func (s *service) GetStats(content string) Stats {
	checkboxes := s.ParseCheckboxes(content)
	total := len(checkboxes)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, cb := range checkboxes {
		if cb.Checked {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

func (s *service) IsFullyCompleted(content string) bool {
	checkboxes := s.ParseCheckboxes(content)
	if len(checkboxes) == 0 {
		return false
	}

	for _, cb := range checkboxes {
		if !cb.Checked {
			return false
		}
	}
	return true
}
