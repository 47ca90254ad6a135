package usecase

import (
	"study-planner/internal/deadline"
	"study-planner/internal/model"
)

// toItem binds d to index and derives its display fields. Indices are never
// cached, so every caller passes the position it just read from the store.
func (uc *implUseCase) toItem(index int, d model.Deadline) deadline.Item {
	return deadline.Item{
		Index:         index,
		Course:        d.Course,
		Date:          uc.dateMath.Format(d.Date),
		DaysRemaining: uc.dateMath.DaysUntil(d.Date, uc.now()),
	}
}
