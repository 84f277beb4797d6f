package errs

import (
	"net/http"
)

// Messages and codes used by the catalog endpoints.
const (
	MessageNotFound       = "not found"
	MessageFavoriteExists = "Favorite already exists"

	CodeRecordNotFound = "RECORD_NOT_FOUND"
	CodeFavoriteExists = "FAVORITE_ALREADY_EXISTS"
)

var (
	// ErrNotFound is returned when a catalog record does not exist.
	ErrNotFound = NewNotFoundError(MessageNotFound, true, ptr(CodeRecordNotFound))

	// ErrFavoriteExists is returned when the user already holds the favorite.
	ErrFavoriteExists = NewBadRequestError(MessageFavoriteExists, true, ptr(CodeFavoriteExists), nil)
)

func ptr(s string) *string {
	return &s
}

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
//   - code: optional custom code string (defaults to "BAD_REQUEST")
//   - errors: optional field errors
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusTooManyRequests),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is always the generic status text; the real cause is logged,
// never sent.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
