package deadline

import (
	"time"

	"study-planner/internal/model"
)

// Item is a deadline as shown to clients, bound to its index at read time.
type Item struct {
	Index         int
	Course        string
	Date          string
	DaysRemaining int
}

// --- UseCase Inputs ---

// UpdateInput edits a deadline. Nil fields are left as they are.
// Date accepts YYYY-MM-DD or a relative phrase such as "next friday".
type UpdateInput struct {
	Index  int
	Course *string
	Date   *string
}

// --- UseCase Outputs ---

type AddOutput struct {
	Item Item
}

type UpdateOutput struct {
	Item Item
}

type ListOutput struct {
	Items []Item
	Phase model.Phase
}

type ExportOutput struct {
	Deadlines  []model.FormattedDeadline
	ExportedAt time.Time
}

type SyncCalendarOutput struct {
	Created int
	Links   []string
}
