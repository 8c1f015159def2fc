package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "user-service/pkg/errors"
)

func TestNewEmail_Valid(t *testing.T) {
	values := []string{
		"john@example.com",
		"john.doe+tag@example.co.jp",
		"a_b%c-d@sub.domain.org",
		"1234@numbers.io",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			email, err := NewEmail(v)
			require.NoError(t, err)
			assert.Equal(t, v, email.String())
		})
	}
}

func TestNewEmail_Required(t *testing.T) {
	_, err := NewEmail("")

	require.Error(t, err)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, apperrors.ReasonRequired, ve.Reason)
}

func TestNewEmail_InvalidFormat(t *testing.T) {
	values := []string{
		"no-at-sign",
		"missing@tld",
		"short-tld@example.c",
		"digits-tld@example.c3",
		"@example.com",
		"john@",
		"spaces in@example.com",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			_, err := NewEmail(v)
			require.Error(t, err)
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, apperrors.ReasonInvalidFormat, ve.Reason)
		})
	}
}

func TestNewEmail_TooLong(t *testing.T) {
	// Well-formed address with 255 characters total.
	local := strings.Repeat("a", 255-len("@example.com"))
	_, err := NewEmail(local + "@example.com")

	require.Error(t, err)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, apperrors.ReasonTooLong, ve.Reason)
}

func TestEmail_Equality(t *testing.T) {
	a, err := NewEmail("john@example.com")
	require.NoError(t, err)
	b, err := NewEmail("john@example.com")
	require.NoError(t, err)
	c, err := NewEmail("jane@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.True(t, a == b)
	assert.False(t, a.Equals(c))
}

func TestEmail_Domain(t *testing.T) {
	email, err := NewEmail("john@mail.example.com")
	require.NoError(t, err)

	assert.Equal(t, "mail.example.com", email.Domain())
}
