package http

import (
	"errors"
	"net/http"

	"cleanly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response shape: a message plus, on success, the
// named resource. Internal failures additionally carry the error detail.
type envelope map[string]any

// statusFromError translates the error taxonomy into HTTP status codes.
// Anything outside the taxonomy is an internal failure.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the failure envelope for a handler error.
func respondError(ctx echo.Context, message string, err error) error {
	code := statusFromError(err)
	body := envelope{"message": message}
	if code == http.StatusInternalServerError {
		body["error"] = err.Error()
	}
	return ctx.JSON(code, body)
}

// respondBadRequest writes a 400 for malformed input that never reached a
// command or query constructor.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, envelope{"message": message})
}

// respond writes the success envelope; resource may be empty for operations
// that return no payload.
func respond(ctx echo.Context, code int, message string, resourceName string, resource any) error {
	body := envelope{"message": message}
	if resourceName != "" {
		body[resourceName] = resource
	}
	return ctx.JSON(code, body)
}
