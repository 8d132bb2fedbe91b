package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrStudentNotFound is returned when a student is not found.
	ErrStudentNotFound = errors.New("student not found")
	// ErrLessonNotFound is returned when a lesson is not found.
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrMissingStudent is returned when a lesson or payment references no
	// resolvable student at creation time.
	ErrMissingStudent = errors.New("no resolvable student")
	// ErrInvalidAmount is returned when a negative fee, hours or amount is supplied.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrStudentInUse is returned when deleting a student that still has
	// lessons or payments.
	ErrStudentInUse = errors.New("student has lessons or payments")
	// ErrUsernameTaken is returned when creating a user with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrStudentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "STUDENT_NOT_FOUND")
	case errors.Is(err, ErrLessonNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LESSON_NOT_FOUND")
	case errors.Is(err, ErrPaymentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PAYMENT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrMissingStudent):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_STUDENT")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrStudentInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "STUDENT_IN_USE")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
