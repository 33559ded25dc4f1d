package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email already on file.
	ErrEmailTaken = errors.New("email already registered")
	// ErrPasswordTooLong is returned when a password exceeds the 72 bytes bcrypt can hash.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated is returned when a route needs a session and none is active.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrPhilosopherNotFound is returned when a philosopher id does not exist.
	ErrPhilosopherNotFound = errors.New("philosopher not found")
	// ErrNotesRequired is returned when no notes were submitted.
	ErrNotesRequired = errors.New("notes are required")
	// ErrQARequired is returned when context or question is missing.
	ErrQARequired = errors.New("context and question are required")
	// ErrUpstream marks a non-success status from the inference service.
	ErrUpstream = errors.New("inference service error")
	// ErrInference marks a transport or decoding failure talking to the inference service.
	ErrInference = errors.New("inference request failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Upstream failures keep
// their full message so callers see the collaborator's status or error text.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrPasswordTooLong):
		return NewHTTPError(http.StatusBadRequest, ErrPasswordTooLong.Error(), "PASSWORD_TOO_LONG")
	case errors.Is(err, ErrPhilosopherNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPhilosopherNotFound.Error(), "PHILOSOPHER_NOT_FOUND")
	case errors.Is(err, ErrNotesRequired):
		return NewHTTPError(http.StatusBadRequest, ErrNotesRequired.Error(), "NOTES_REQUIRED")
	case errors.Is(err, ErrQARequired):
		return NewHTTPError(http.StatusBadRequest, ErrQARequired.Error(), "CONTEXT_AND_QUESTION_REQUIRED")
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "UPSTREAM_ERROR")
	case errors.Is(err, ErrInference):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INFERENCE_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
