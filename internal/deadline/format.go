package deadline

import (
	"study-planner/internal/model"
	"study-planner/pkg/datemath"
)

// Format renders d with its date as YYYY-MM-DD.
func Format(p *datemath.Parser, d model.Deadline) model.FormattedDeadline {
	return model.FormattedDeadline{Course: d.Course, Date: p.Format(d.Date)}
}

// FormatAll formats ds, keeping their order.
func FormatAll(p *datemath.Parser, ds []model.Deadline) []model.FormattedDeadline {
	out := make([]model.FormattedDeadline, len(ds))
	for i, d := range ds {
		out[i] = Format(p, d)
	}
	return out
}

// CourseNames returns the course of every deadline, keeping their order.
func CourseNames(ds []model.Deadline) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Course
	}
	return out
}
