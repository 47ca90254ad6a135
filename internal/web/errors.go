package web

import (
	"errors"
	"net/http"

	"study-planner/internal/deadline"
	"study-planner/internal/deadline/repository"
	"study-planner/internal/planner"
	"study-planner/internal/session"
)

var errInvalidIndex = errors.New("invalid deadline index")

// mapError returns the status and the message shown inline on the page.
func (h *handler) mapError(err error) (int, string) {
	var svcErr *planner.ServiceError
	switch {
	case planner.IsValidationError(err):
		return http.StatusUnprocessableEntity, "Please fill in all the fields: " + err.Error() + "."
	case errors.As(err, &svcErr):
		return http.StatusBadGateway, "The study plan could not be generated. Please try again later."
	case errors.Is(err, repository.ErrIndexOutOfRange):
		return http.StatusNotFound, "That deadline no longer exists. The list below is up to date."
	case errors.Is(err, errInvalidIndex):
		return http.StatusBadRequest, "That deadline could not be found."
	case errors.Is(err, deadline.ErrInvalidDate):
		return http.StatusBadRequest, "Please enter the deadline date as YYYY-MM-DD."
	case errors.Is(err, session.ErrSessionBusy):
		return http.StatusConflict, "A study plan is still being generated. Please wait for it to finish."
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}
