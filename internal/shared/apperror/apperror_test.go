package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"leavehub/internal/shared/apperror"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its shape", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "username already exists", http.StatusConflict)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
		assert.Equal(t, "username already exists", httpErr.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		inner := apperror.New(apperror.CodeNotFound, "user not found", http.StatusNotFound)
		wrapped := fmt.Errorf("loading profile: %w", inner)

		httpErr := apperror.ToHTTP(wrapped)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	})

	t.Run("unknown error collapses to opaque 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "Internal server error", httpErr.Message)
		assert.NotContains(t, httpErr.Message, "connection refused")
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := apperror.Wrap(cause, apperror.CodeInternalError, "save failed", http.StatusInternalServerError)

	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "save failed")
	assert.Contains(t, wrapped.Error(), "disk full")
}
