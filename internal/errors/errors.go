package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole is returned when a payload carries an unknown role value.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrClassNotFound is returned when a class is not found.
	ErrClassNotFound = errors.New("class not found")
	// ErrClassFull is returned when a class has reached its capacity.
	ErrClassFull = errors.New("class is fully booked")
	// ErrAlreadyBooked is returned when a member already holds a booking for the class.
	ErrAlreadyBooked = errors.New("class already booked")
	// ErrForbidden is returned when the caller's role does not allow the operation.
	ErrForbidden = errors.New("forbidden")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown maps
// to a generic 500 so internals never leak to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrDuplicateEmail:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrInvalidRole:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrClassNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLASS_NOT_FOUND")
	case ErrClassFull:
		return NewHTTPError(http.StatusConflict, err.Error(), "CLASS_FULL")
	case ErrAlreadyBooked:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_BOOKED")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
