package usecase

import (
	"context"
	"errors"
	"strings"

	"study-planner/internal/deadline"
	"study-planner/internal/model"
	"study-planner/internal/planner"
)

// Generate holds the session for the whole provider call, so other actions
// on the same session are rejected as busy until it returns.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input planner.GenerateInput) (planner.GenerateOutput, error) {
	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return planner.GenerateOutput{}, err
	}
	defer release()

	sess.SetPreferences(input.Preferences)

	records, err := sess.Deadlines.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.planner.usecase.Generate: All: %v", err)
		return planner.GenerateOutput{}, err
	}

	if len(records) == 0 {
		sess.ClearPlan()
		return planner.GenerateOutput{}, planner.ErrNoDeadlines
	}
	if strings.TrimSpace(input.Preferences) == "" {
		sess.ClearPlan()
		return planner.GenerateOutput{}, planner.ErrEmptyPreferences
	}

	formatted := deadline.FormatAll(uc.dateMath, records)
	prompt := planner.BuildPrompt(deadline.CourseNames(records), formatted, input.Preferences) +
		planner.TimeContext(uc.now().In(uc.dateMath.Location()))

	text, err := uc.client.Generate(ctx, prompt)
	if err != nil {
		// A failed call never leaves an older plan on screen.
		sess.ClearPlan()
		uc.l.Errorf(ctx, "internal.planner.usecase.Generate: client.Generate: %v", err)

		var svcErr *planner.ServiceError
		if !errors.As(err, &svcErr) {
			err = &planner.ServiceError{Err: err}
		}
		return planner.GenerateOutput{}, err
	}

	at := uc.now()
	sess.SetPlan(text, at)
	uc.l.Infof(ctx, "internal.planner.usecase.Generate: plan generated for %d deadline(s)", len(records))

	return planner.GenerateOutput{
		PlanText:    text,
		GeneratedAt: at,
		Deadlines:   formatted,
	}, nil
}

// State returns the session's deadlines, phase and plan, read under one hold
// so they are consistent with each other.
func (uc *implUseCase) State(ctx context.Context, sc model.Scope) (planner.StateOutput, error) {
	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return planner.StateOutput{}, err
	}
	defer release()

	records, err := sess.Deadlines.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.planner.usecase.State: All: %v", err)
		return planner.StateOutput{}, err
	}

	text, at := sess.Plan()
	return planner.StateOutput{
		Records:     records,
		Phase:       sess.Phase(),
		Preferences: sess.Preferences(),
		PlanText:    text,
		PlannedAt:   at,
	}, nil
}
