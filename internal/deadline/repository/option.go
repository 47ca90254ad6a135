package repository

import "time"

// UpdateOptions holds parameters for editing a record in place.
// Nil fields are left untouched.
type UpdateOptions struct {
	Index  int
	Course *string
	Date   *time.Time
}
