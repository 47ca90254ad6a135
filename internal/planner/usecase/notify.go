package usecase

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/deadline"
	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/pkg/telegram"
)

// Notify sends the session's current plan, preceded by its deadlines, to
// the configured chat. Long plans go out as several messages; sending stops
// at the first failure.
func (uc *implUseCase) Notify(ctx context.Context, sc model.Scope) (planner.NotifyOutput, error) {
	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return planner.NotifyOutput{}, err
	}
	defer release()

	if uc.messenger == nil {
		return planner.NotifyOutput{}, planner.ErrNotifierNotConfigured
	}

	text, _ := sess.Plan()
	if text == "" {
		return planner.NotifyOutput{}, planner.ErrNoPlan
	}

	records, err := sess.Deadlines.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.planner.usecase.Notify: All: %v", err)
		return planner.NotifyOutput{}, err
	}

	chunks := telegram.SplitMessage(uc.buildNotification(deadline.FormatAll(uc.dateMath, records), text), telegram.MaxMessageLength)
	for i, chunk := range chunks {
		if _, err := uc.messenger.SendMessage(ctx, uc.chatID, chunk); err != nil {
			uc.l.Errorf(ctx, "internal.planner.usecase.Notify: SendMessage %d/%d: %v", i+1, len(chunks), err)
			return planner.NotifyOutput{Messages: i}, fmt.Errorf("%w after %d message(s): %w", planner.ErrNotificationFailed, i, err)
		}
	}

	uc.l.Infof(ctx, "internal.planner.usecase.Notify: sent plan in %d message(s)", len(chunks))
	return planner.NotifyOutput{Messages: len(chunks), SentAt: uc.now()}, nil
}

// buildNotification lists the deadlines as a checklist the student can tick
// off in the chat, then the plan.
func (uc *implUseCase) buildNotification(deadlines []model.FormattedDeadline, planText string) string {
	var b strings.Builder
	b.WriteString("Your study plan\n\n")
	if len(deadlines) > 0 {
		labels := make([]string, len(deadlines))
		for i, d := range deadlines {
			labels[i] = fmt.Sprintf("%s: %s", d.Course, d.Date)
		}
		b.WriteString("Deadlines:\n")
		b.WriteString(uc.checks.Build(labels))
		b.WriteString("\n")
	}
	b.WriteString(planText)
	return b.String()
}
