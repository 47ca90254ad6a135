package planner

import (
	"context"

	"study-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate validates the session, asks the PlanClient for a plan and stores it.
	// Validation and service failures leave the session in the editing phase.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	// State returns the session's deadlines, phase, preferences and last plan.
	State(ctx context.Context, sc model.Scope) (StateOutput, error)
	// Notify sends the current plan to the configured Telegram chat.
	Notify(ctx context.Context, sc model.Scope) (NotifyOutput, error)
}
