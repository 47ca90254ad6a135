// Package view renders a session's deadlines and plan text into the data
// the HTML templates display. Views are pure: they read the records they
// are given and never touch the store.
package view

import (
	"html/template"
	"time"

	"study-planner/internal/checklist"
	"study-planner/internal/model"
)

const (
	NameDashboard = "dashboard"
	NameCombined  = "combined"
)

// View is one presentation mode of the planner page.
type View interface {
	Name() string
	Render(records []model.Deadline, planText string, now time.Time) (Page, error)
}

// Row is one formatted deadline. Index is the record's position in the
// store at render time and is only valid until the next change.
type Row struct {
	Index         int
	Course        string
	Date          string
	DaysRemaining int
}

// ChecklistItem is a render-local checkbox with its delete control.
type ChecklistItem struct {
	Index int
	Label string
}

// Plan is the generated plan text and its rendered form.
type Plan struct {
	Text     string
	HTML     template.HTML
	Progress checklist.Stats
	Done     bool
}

// Page is everything a view produces for one render.
type Page struct {
	View string
	Rows []Row // store order

	// Dashboard
	Upcoming []Row // sorted by date

	// Combined
	Timeline  []string
	Checklist []ChecklistItem

	Plan Plan
}
