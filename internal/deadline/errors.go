package deadline

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate           = errors.New("invalid deadline date")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
	ErrEmptyUpdate           = errors.New("set course, date or both")
)

// CalendarSyncError reports a sync that stopped part way. Created events stay
// in the calendar.
type CalendarSyncError struct {
	Created int
	Err     error
}

func (e *CalendarSyncError) Error() string {
	return fmt.Sprintf("calendar sync stopped after %d event(s): %v", e.Created, e.Err)
}

func (e *CalendarSyncError) Unwrap() error {
	return e.Err
}
