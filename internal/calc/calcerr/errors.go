package calcerr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidInput is wrapped by every validation failure of the calculators.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError wraps a sentinel with the offending field.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// Invalid reports a rejected field value as ErrInvalidInput.
func Invalid(field string, value any) *ValidationError {
	return &ValidationError{Field: field, Value: format(value), Wrapped: ErrInvalidInput}
}

// Positive returns an error unless v is a finite number greater than zero.
func Positive(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return Invalid(field, v)
	}
	return nil
}

// Field returns the field name of a validation error, or "" for other errors.
func Field(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}

func format(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
