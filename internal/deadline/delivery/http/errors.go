package http

import (
	"errors"
	"fmt"
	"net/http"

	"study-planner/internal/deadline"
	"study-planner/internal/deadline/repository"
	"study-planner/internal/session"
	pkgErrors "study-planner/pkg/errors"
)

var errInvalidIndex = errors.New("index must be a non-negative integer")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var syncErr *deadline.CalendarSyncError
	switch {
	case errors.Is(err, repository.ErrIndexOutOfRange):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "deadline not found, reload the list")
	case errors.Is(err, deadline.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, deadline.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &syncErr):
		return pkgErrors.NewHTTPError(http.StatusBadGateway,
			fmt.Sprintf("google calendar rejected an event, %d event(s) were created before it", syncErr.Created))
	case errors.Is(err, session.ErrSessionBusy):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
