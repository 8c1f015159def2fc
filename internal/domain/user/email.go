package user

import (
	"regexp"
	"strings"

	apperrors "user-service/pkg/errors"
)

// maxEmailLength is the RFC 5321 overall address limit.
const maxEmailLength = 254

// emailPattern requires an ASCII local part, dot-separated domain labels and
// a top-level label of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is an immutable email address value object. Two Emails are equal iff
// their string values are equal; the zero value is invalid and only
// NewEmail produces valid instances.
type Email struct {
	value string
}

// NewEmail validates value and constructs an Email. It fails with a
// ValidationError when value is empty, malformed, or longer than 254
// characters.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, apperrors.NewValidationError("email", apperrors.ReasonRequired)
	}
	if !emailPattern.MatchString(value) {
		return Email{}, apperrors.NewValidationError("email", apperrors.ReasonInvalidFormat)
	}
	if len(value) > maxEmailLength {
		return Email{}, apperrors.NewValidationError("email", apperrors.ReasonTooLong)
	}
	return Email{value: value}, nil
}

// String returns the underlying address unchanged.
func (e Email) String() string {
	return e.value
}

// Equals reports whether both emails hold the same string value.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// Domain returns the part of the address after the last '@'.
func (e Email) Domain() string {
	idx := strings.LastIndex(e.value, "@")
	if idx < 0 {
		return ""
	}
	return e.value[idx+1:]
}
