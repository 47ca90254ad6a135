package view

import (
	"cmp"
	"slices"
	"time"

	"study-planner/internal/checklist"
	"study-planner/internal/deadline"
	"study-planner/internal/model"
	"study-planner/pkg/datemath"
)

type dashboard struct {
	dateMath  *datemath.Parser
	checklist checklist.Service
}

// NewDashboard returns the tabular view: the deadlines as entered, the same
// deadlines sorted by date, and the plan text.
func NewDashboard(dateMath *datemath.Parser, cl checklist.Service) View {
	return &dashboard{dateMath: dateMath, checklist: cl}
}

func (d *dashboard) Name() string { return NameDashboard }

func (d *dashboard) Render(records []model.Deadline, planText string, now time.Time) (Page, error) {
	rows, err := formatRows(d.dateMath, records, now)
	if err != nil {
		return Page{}, err
	}

	upcoming := slices.Clone(rows)
	// YYYY-MM-DD compares chronologically as a string.
	slices.SortStableFunc(upcoming, func(a, b Row) int {
		return cmp.Compare(a.Date, b.Date)
	})

	plan, err := renderPlan(d.checklist, planText)
	if err != nil {
		return Page{}, err
	}

	return Page{
		View:     NameDashboard,
		Rows:     rows,
		Upcoming: upcoming,
		Plan:     plan,
	}, nil
}

func formatRows(p *datemath.Parser, records []model.Deadline, now time.Time) ([]Row, error) {
	rows := make([]Row, len(records))
	for i, r := range records {
		f := deadline.Format(p, r)
		days, err := p.DaysRemaining(f.Date, now)
		if err != nil {
			return nil, err
		}
		rows[i] = Row{Index: i, Course: f.Course, Date: f.Date, DaysRemaining: days}
	}
	return rows, nil
}
