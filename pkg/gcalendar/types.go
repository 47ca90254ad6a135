package gcalendar

import "time"

// CreateAllDayEventRequest is the input for creating an all-day event.
type CreateAllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time // only the calendar date is used
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string // YYYY-MM-DD
}
