package planner

import (
	"fmt"
	"strings"
	"time"

	"study-planner/internal/model"
)

// BuildPrompt writes one instruction for a text model. Every course name,
// every formatted date and the preference text appear verbatim; nothing is
// truncated.
func BuildPrompt(courseNames []string, deadlines []model.FormattedDeadline, preferences string) string {
	var sb strings.Builder

	sb.WriteString("Generate a study plan for the following courses: ")
	sb.WriteString(strings.Join(courseNames, ", "))
	sb.WriteString(".\nDeadlines are:\n")
	for _, d := range deadlines {
		sb.WriteString("- ")
		sb.WriteString(d.Course)
		sb.WriteString(": ")
		sb.WriteString(d.Date)
		sb.WriteString("\n")
	}
	sb.WriteString("Preferences are: ")
	sb.WriteString(preferences)
	sb.WriteString("\n")

	return sb.String()
}

const timeContextTemplate = `
Today is %s (%s). This week runs from %s to %s.
Write every date as YYYY-MM-DD.
`

// TimeContext describes the current day and week so the model can place
// study sessions relative to today. now should already be in the planner timezone.
func TimeContext(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1)) // Monday
	weekEnd := weekStart.AddDate(0, 0, 6)

	return fmt.Sprintf(timeContextTemplate,
		now.Format(time.DateOnly),
		now.Weekday(),
		weekStart.Format(time.DateOnly),
		weekEnd.Format(time.DateOnly),
	)
}
