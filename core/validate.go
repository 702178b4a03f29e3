package core

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the process-wide validator instance. validator.Validate
// caches struct metadata, so sharing one instance is both safe and cheap.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports a request payload that failed local validation
// before any network I/O. It wraps ErrValidation.
type ValidationError struct {
	// Fields lists the failing fields as "Field: rule" strings.
	Fields []string
	cause  error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "webex: invalid request payload"
	}
	return "webex: invalid request payload (" + strings.Join(e.Fields, "; ") + ")"
}

// Unwrap returns ErrValidation for error chaining.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Cause returns the underlying validator error, if any.
func (e *ValidationError) Cause() error {
	return e.cause
}

// Validate checks a request payload against its validate tags. It returns
// a *ValidationError on failure, nil otherwise.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verr := &ValidationError{cause: err}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Fields = append(verr.Fields, fe.Field()+": "+fe.Tag())
		}
	}
	return verr
}
