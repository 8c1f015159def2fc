package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("email", ReasonInvalidFormat), http.StatusBadRequest},
		{"conflict", NewConflictError(ReasonEmailTaken), http.StatusBadRequest},
		{"not found", NewNotFoundError("user"), http.StatusNotFound},
		{"infrastructure", NewInfrastructureError("db down", nil), http.StatusInternalServerError},
		{"untyped", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusOf(tt.err))
		})
	}
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("email", ReasonRequired)))
	assert.True(t, IsConflict(NewConflictError(ReasonEmailTaken)))
	assert.True(t, IsNotFound(NewNotFoundError("user")))

	assert.False(t, IsValidation(NewConflictError(ReasonEmailTaken)))
	assert.False(t, IsConflict(fmt.Errorf("boom")))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("saving user: %w", NewConflictError(ReasonEmailTaken))

	assert.True(t, IsConflict(wrapped))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusOf(wrapped))
}

func TestInfrastructureErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewInfrastructureError("query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
