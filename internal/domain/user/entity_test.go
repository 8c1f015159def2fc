package user

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "user-service/pkg/errors"
)

func mustEmail(t *testing.T, value string) Email {
	t.Helper()
	email, err := NewEmail(value)
	require.NoError(t, err)
	return email
}

func TestNewUser_Success(t *testing.T) {
	now := time.Now()
	u, err := NewUser(0, mustEmail(t, "john@example.com"), "John Doe", now, now)

	require.NoError(t, err)
	assert.Equal(t, int64(0), u.ID())
	assert.Equal(t, "john@example.com", u.Email().String())
	assert.Equal(t, "John Doe", u.Name())
	assert.Equal(t, now, u.CreatedAt())
	assert.Equal(t, now, u.UpdatedAt())
}

func TestNewUser_NameRequired(t *testing.T) {
	now := time.Now()
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NewUser(0, mustEmail(t, "john@example.com"), name, now, now)

		require.Error(t, err)
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, apperrors.ReasonNameRequired, ve.Reason)
	}
}

func TestNewUser_NameTooLong(t *testing.T) {
	now := time.Now()
	_, err := NewUser(0, mustEmail(t, "john@example.com"), strings.Repeat("x", 101), now, now)

	require.Error(t, err)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, apperrors.ReasonNameTooLong, ve.Reason)
}

func TestNewUser_NameBoundary(t *testing.T) {
	now := time.Now()
	u, err := NewUser(0, mustEmail(t, "john@example.com"), strings.Repeat("x", 100), now, now)

	require.NoError(t, err)
	assert.Len(t, u.Name(), 100)
}

func TestNewUser_NameStoredUntrimmed(t *testing.T) {
	now := time.Now()
	u, err := NewUser(0, mustEmail(t, "john@example.com"), "  John  ", now, now)

	require.NoError(t, err)
	assert.Equal(t, "  John  ", u.Name())
}

func TestChangeName_Success(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	u, err := NewUser(1, mustEmail(t, "john@example.com"), "John Doe", created, created)
	require.NoError(t, err)

	before := u.UpdatedAt()
	time.Sleep(time.Millisecond)

	require.NoError(t, u.ChangeName("John Smith"))
	assert.Equal(t, "John Smith", u.Name())
	assert.True(t, u.UpdatedAt().After(before))
	assert.Equal(t, created, u.CreatedAt())
}

func TestChangeName_InvalidLeavesStateUnchanged(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	u, err := NewUser(1, mustEmail(t, "john@example.com"), "John Doe", created, created)
	require.NoError(t, err)

	require.Error(t, u.ChangeName("   "))
	require.Error(t, u.ChangeName(strings.Repeat("x", 101)))

	assert.Equal(t, "John Doe", u.Name())
	assert.Equal(t, created, u.UpdatedAt())
}

func TestChangeEmail_ReplacesAndTouches(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	u, err := NewUser(1, mustEmail(t, "john@example.com"), "John Doe", created, created)
	require.NoError(t, err)

	before := u.UpdatedAt()
	time.Sleep(time.Millisecond)

	u.ChangeEmail(mustEmail(t, "john@other.org"))

	assert.Equal(t, "john@other.org", u.Email().String())
	assert.True(t, u.UpdatedAt().After(before))
}

func TestIsActive_AlwaysTrue(t *testing.T) {
	now := time.Now()
	u, err := NewUser(1, mustEmail(t, "john@example.com"), "John Doe", now, now)
	require.NoError(t, err)

	assert.True(t, u.IsActive())
}
