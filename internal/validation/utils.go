// Package validation binds request data and validates it.
//
// It uses the `validator` library to enforce rules defined in struct tags
// and turns binding and validation failures into 400 errors the client can
// understand.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/deppfellow/holocron/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Every endpoint takes its input from the URL path. The body and query
	// string are never decoded, so they can neither override a path
	// parameter nor fail the request on an unsupported content type.
	binder = &echo.DefaultBinder{}
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

// Struct runs the tag validator on v. Request types call it from Validate.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds the path parameters into payload (a pointer) and
// validates it. Failures come back as a 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := binder.BindPathParams(c, payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors(err))
	}

	return nil
}

// bindError extracts the binder's message, e.g. a strconv failure for a
// non-integer id.
func bindError(err error) *errs.HTTPError {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code < http.StatusInternalServerError {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, false, nil, nil)
		}
	}

	return errs.NewBadRequestError("Invalid request", false, nil, nil)
}

func fieldErrors(err error) []errs.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	result := make([]errs.FieldError, 0, len(validationErrors))
	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())

		var msg string
		switch err.Tag() {
		case "min", "gte":
			msg = fmt.Sprintf("must be at least %s", err.Param())
		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		result = append(result, errs.FieldError{Field: field, Error: msg})
	}

	return result
}
