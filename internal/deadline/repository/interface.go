package repository

import (
	"context"

	"study-planner/internal/model"
)

// Repository is the ordered deadline store of one planning session.
// Records are addressed by their current index; indices shift down after Remove.
type Repository interface {
	// Append adds d at the end and returns its index.
	Append(ctx context.Context, d model.Deadline) (int, error)
	// Update overwrites the fields set in opt on the record at opt.Index.
	Update(ctx context.Context, opt UpdateOptions) (model.Deadline, error)
	// Remove deletes the record at index and returns it.
	Remove(ctx context.Context, index int) (model.Deadline, error)
	// All returns a copy of the records in insertion order.
	All(ctx context.Context) ([]model.Deadline, error)
	// Len returns the number of records.
	Len(ctx context.Context) int
}
