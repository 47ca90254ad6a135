package view

import (
	"fmt"
	"time"

	"study-planner/internal/checklist"
	"study-planner/internal/model"
	"study-planner/pkg/datemath"
)

type combined struct {
	dateMath  *datemath.Parser
	checklist checklist.Service
}

// NewCombined returns the timeline and checklist view.
func NewCombined(dateMath *datemath.Parser, cl checklist.Service) View {
	return &combined{dateMath: dateMath, checklist: cl}
}

func (c *combined) Name() string { return NameCombined }

func (c *combined) Render(records []model.Deadline, planText string, now time.Time) (Page, error) {
	rows, err := formatRows(c.dateMath, records, now)
	if err != nil {
		return Page{}, err
	}

	timeline := make([]string, len(rows))
	items := make([]ChecklistItem, len(rows))
	for i, r := range rows {
		timeline[i] = fmt.Sprintf("%s: %s (%d days left)", r.Course, r.Date, r.DaysRemaining)
		items[i] = ChecklistItem{Index: r.Index, Label: r.Course + ": " + r.Date}
	}

	plan, err := renderPlan(c.checklist, planText)
	if err != nil {
		return Page{}, err
	}

	return Page{
		View:      NameCombined,
		Rows:      rows,
		Timeline:  timeline,
		Checklist: items,
		Plan:      plan,
	}, nil
}
