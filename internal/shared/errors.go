package shared

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrNothingToUpdate is returned by repositories when a partial update carries no fields.
// No write is performed.
var ErrNothingToUpdate = errors.New("nothing to update")

// ValidationError marks malformed or missing input. Handlers surface it as 400.
type ValidationError struct {
	Err error
}

// NewValidationError wraps err, returning nil when err is nil so it can wrap Validate() directly.
func NewValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Fields flattens ozzo field errors into field -> message.
// Returns nil when the wrapped error is not field-scoped.
func (e *ValidationError) Fields() map[string]string {
	var errs validation.Errors
	if !errors.As(e.Err, &errs) {
		return nil
	}

	fields := make(map[string]string, len(errs))
	for field, err := range errs {
		fields[field] = err.Error()
	}
	return fields
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
