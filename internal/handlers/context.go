package handlers

import (
	"errors"
	"net/http"

	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// viewerID returns the authenticated caller's id placed in the context
// by the auth middleware, or "" if the request is unauthenticated.
func viewerID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextUserIDKey).(string)
	return id
}

// httpError maps the service error taxonomy onto HTTP status codes.
// Store failures are logged with their cause and surfaced as a generic
// 500 without internal detail.
func httpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
