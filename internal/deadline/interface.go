package deadline

import (
	"context"

	"study-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Add appends an empty deadline due today.
	Add(ctx context.Context, sc model.Scope) (AddOutput, error)
	// Update edits the course and/or date of the deadline at input.Index.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	// Remove deletes the deadline at index; later deadlines move up by one.
	Remove(ctx context.Context, sc model.Scope, index int) error
	// List returns the deadlines in store order with indices recomputed.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	// Export returns the formatted deadlines for download.
	Export(ctx context.Context, sc model.Scope) (ExportOutput, error)
	// SyncCalendar creates one all-day Google Calendar event per deadline.
	SyncCalendar(ctx context.Context, sc model.Scope) (SyncCalendarOutput, error)
}
