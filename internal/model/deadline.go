package model

import "time"

// Deadline is one course deadline entered by the user.
// Identity is positional: a Deadline is addressed by its index in the store.
type Deadline struct {
	Course string
	Date   time.Time // midnight of the due day in the planner timezone
}

// FormattedDeadline is a Deadline with its date rendered as YYYY-MM-DD.
// It is derived on demand and never stored.
type FormattedDeadline struct {
	Course string `json:"course"`
	Date   string `json:"date"`
}

// Phase is the observable state of a planning session.
type Phase string

const (
	// PhaseEditing means no plan text is held.
	PhaseEditing Phase = "editing"
	// PhasePlanned means plan text from the last successful generation is held.
	PhasePlanned Phase = "planned"
)
