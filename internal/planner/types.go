package planner

import (
	"time"

	"study-planner/internal/model"
)

// --- UseCase Inputs ---

type GenerateInput struct {
	Preferences string
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	PlanText    string
	GeneratedAt time.Time
	Deadlines   []model.FormattedDeadline
}

type StateOutput struct {
	Records     []model.Deadline
	Phase       model.Phase
	Preferences string
	PlanText    string
	PlannedAt   time.Time
}

type NotifyOutput struct {
	Messages int
	SentAt   time.Time
}
