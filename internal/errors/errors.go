package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidPasscode is returned when the submitted passcode does not match.
	ErrInvalidPasscode = errors.New("invalid passcode")
	// ErrPasscodeTooShort is returned when a new passcode fails the length check.
	ErrPasscodeTooShort = errors.New("passcode must be at least 6 characters long")
	// ErrAdminNotFound is returned when the admin record is missing.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrProjectNotFound is returned when a project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrSkillNotFound is returned when a skill does not exist.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrContactNotFound is returned when a contact does not exist.
	ErrContactNotFound = errors.New("contact not found")
	// ErrEducationNotFound is returned when an education entry does not exist.
	ErrEducationNotFound = errors.New("education entry not found")
	// ErrFeaturedLimit is returned when a write would exceed the featured project cap.
	ErrFeaturedLimit = errors.New("no more than 6 projects can be featured")
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// into a generic 500 so internal detail never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidPasscode):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrPasscodeTooShort), errors.Is(err, ErrFeaturedLimit):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAdminNotFound),
		errors.Is(err, ErrProjectNotFound),
		errors.Is(err, ErrSkillNotFound),
		errors.Is(err, ErrContactNotFound),
		errors.Is(err, ErrEducationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error")
	}
}
