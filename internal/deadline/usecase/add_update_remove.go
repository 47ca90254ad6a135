package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"study-planner/internal/deadline"
	repo "study-planner/internal/deadline/repository"
	"study-planner/internal/model"
)

// Add appends {course: "", date: today} to the session's store.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope) (deadline.AddOutput, error) {
	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return deadline.AddOutput{}, err
	}
	defer release()

	rec := model.Deadline{Date: uc.dateMath.Today(uc.now())}
	idx, err := sess.Deadlines.Append(ctx, rec)
	if err != nil {
		uc.l.Errorf(ctx, "internal.deadline.usecase.Add: Append: %v", err)
		return deadline.AddOutput{}, err
	}

	return deadline.AddOutput{Item: uc.toItem(idx, rec)}, nil
}

// Update edits the record at input.Index. Date input may be YYYY-MM-DD or a
// relative phrase.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input deadline.UpdateInput) (deadline.UpdateOutput, error) {
	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return deadline.UpdateOutput{}, err
	}
	defer release()

	opt := repo.UpdateOptions{Index: input.Index, Course: input.Course}
	if input.Date != nil {
		date, err := uc.dateMath.Resolve(*input.Date, uc.now())
		if err != nil {
			return deadline.UpdateOutput{}, fmt.Errorf("%w: %v", deadline.ErrInvalidDate, err)
		}
		opt.Date = &date
	}

	rec, err := sess.Deadlines.Update(ctx, opt)
	if err != nil {
		uc.logStoreError(ctx, "Update", err)
		return deadline.UpdateOutput{}, err
	}

	return deadline.UpdateOutput{Item: uc.toItem(input.Index, rec)}, nil
}

// Remove deletes the record at index. The session's plan text is left as it
// is, even though it may now mention a removed course.
func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, index int) error {
	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return err
	}
	defer release()

	removed, err := sess.Deadlines.Remove(ctx, index)
	if err != nil {
		uc.logStoreError(ctx, "Remove", err)
		return err
	}

	uc.l.Debugf(ctx, "internal.deadline.usecase.Remove: removed %q at index %d", removed.Course, index)
	return nil
}

// List returns every record bound to its current index.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (deadline.ListOutput, error) {
	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return deadline.ListOutput{}, err
	}
	defer release()

	all, err := sess.Deadlines.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.deadline.usecase.List: All: %v", err)
		return deadline.ListOutput{}, err
	}

	items := make([]deadline.Item, len(all))
	for i, d := range all {
		items[i] = uc.toItem(i, d)
	}
	return deadline.ListOutput{Items: items, Phase: sess.Phase()}, nil
}

// Export returns the formatted deadlines in store order.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope) (deadline.ExportOutput, error) {
	sess, release, err := uc.sessions.Acquire(sc.SessionID)
	if err != nil {
		return deadline.ExportOutput{}, err
	}
	defer release()

	all, err := sess.Deadlines.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.deadline.usecase.Export: All: %v", err)
		return deadline.ExportOutput{}, err
	}

	return deadline.ExportOutput{
		Deadlines:  deadline.FormatAll(uc.dateMath, all),
		ExportedAt: uc.now().UTC().Truncate(time.Second),
	}, nil
}

// logStoreError logs stale indices as warnings and anything else as errors.
func (uc *implUseCase) logStoreError(ctx context.Context, op string, err error) {
	if errors.Is(err, repo.ErrIndexOutOfRange) {
		uc.l.Warnf(ctx, "internal.deadline.usecase.%s: stale index: %v", op, err)
		return
	}
	uc.l.Errorf(ctx, "internal.deadline.usecase.%s: %v", op, err)
}
