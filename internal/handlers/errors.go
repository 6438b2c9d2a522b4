package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/wanderlog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service errors to client responses. Anything it does not
// recognise is returned unchanged and rendered as an opaque 500 by the
// server's error handler.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrCommentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	case errors.Is(err, services.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")

	case errors.Is(err, services.ErrCountryNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, "Country not found")
	case errors.Is(err, services.ErrMissingUsername):
		return echo.NewHTTPError(http.StatusBadRequest, "Error retrieving username. Please log in again to continue.")
	case errors.Is(err, services.ErrMissingContent):
		return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
	case errors.Is(err, services.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusBadRequest, "Username already exists. Please try a different username.")
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrReferenceNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized - Please login")

	case errors.Is(err, services.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "Post was modified by another request, please retry")
	}
	return err
}

func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
