package planner

import "errors"

var (
	ErrNoDeadlines      = errors.New("add at least one course deadline before generating a plan")
	ErrEmptyPreferences = errors.New("enter your study preferences before generating a plan")

	ErrNoPlan                = errors.New("there is no study plan to send yet")
	ErrNotifierNotConfigured = errors.New("telegram notifications are not configured")
	ErrNotificationFailed    = errors.New("sending the study plan failed")
)

// ServiceError reports that the generation service could not produce a plan.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return "study plan generation failed: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is one of the submit validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoDeadlines) || errors.Is(err, ErrEmptyPreferences)
}
