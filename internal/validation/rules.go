// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/enrollment/internal/cpf"
	apperrors "github.com/allisson/enrollment/internal/errors"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

var cpfShapeRegex = regexp.MustCompile(`^[0-9.\-]+$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
// The original error stays in the chain so per-field messages can be recovered.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// CPFShape restricts raw CPF input to digits, dots and dashes.
// Letters and any other symbol are rejected before the checksum runs.
var CPFShape = validation.Match(cpfShapeRegex).
	ErrorObject(validation.NewError("validation_cpf_shape", "only digits, dots and dashes are allowed"))

// CPF validates the CPF checksum. Every failure carries the same message.
var CPF = validation.NewStringRuleWithError(
	cpf.IsValid,
	validation.NewError("validation_cpf", cpf.ErrInvalid.Error()),
)

// Date validates that a string is a date in YYYY-MM-DD format.
var Date = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := time.Parse(DateLayout, s)
		return err == nil
	},
	validation.NewError("validation_date", "must be a date in YYYY-MM-DD format"),
)

// CivilDate returns the calendar day of t, in t's own location, as UTC midnight.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NotFutureDate rejects dates after the current day. The current day is taken in
// the location of the time returned by now. Empty values pass; use Required for presence.
func NotFutureDate(now func() time.Time) validation.Rule {
	return validation.By(func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil || v == nil {
			return nil
		}

		var date time.Time
		switch t := v.(type) {
		case time.Time:
			date = t
		case string:
			if t == "" {
				return nil
			}
			parsed, err := time.Parse(DateLayout, t)
			if err != nil {
				// Format errors are reported by Date.
				return nil
			}
			date = parsed
		default:
			return validation.NewError("validation_date_type", "must be a date")
		}

		if date.IsZero() {
			return nil
		}

		if CivilDate(date).After(CivilDate(now())) {
			return validation.NewError("validation_date_future", "must not be in the future")
		}
		return nil
	})
}
