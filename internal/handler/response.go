package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Kay-svg505/Philologic-platform/internal/errors"
)

// respondError converts a service error into an echo HTTP error whose
// message is the JSON ErrorResponse body.
func respondError(err error) error {
	mapped := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse()).SetInternal(err)
}
