package http

import (
	"errors"
	"net/http"

	"study-planner/internal/planner"
	"study-planner/internal/session"
	pkgErrors "study-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var svcErr *planner.ServiceError
	switch {
	case planner.IsValidationError(err):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrNoPlan):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrNotifierNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, planner.ErrNotificationFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, planner.ErrNotificationFailed.Error())
	case errors.As(err, &svcErr):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "the study plan service is unavailable, try again later")
	case errors.Is(err, session.ErrSessionBusy):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
