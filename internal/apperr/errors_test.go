package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesOnCode(t *testing.T) {
	err := ClientNotFound("No client exists with login 'nobody'")

	assert.True(t, errors.Is(err, ErrClientNotFound))
	assert.False(t, errors.Is(err, ErrPasswordNotFound))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestError_IsSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("lookup failed: %w", PasswordNotFound("no passwords"))

	assert.True(t, errors.Is(err, ErrPasswordNotFound))
}

func TestError_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
		code   Code
	}{
		{"client not found", ClientNotFound("x"), http.StatusNotFound, CodeClientNotFound},
		{"password not found", PasswordNotFound("x"), http.StatusNotFound, CodePasswordNotFound},
		{"login already exists", LoginAlreadyExists(), http.StatusBadRequest, CodeLoginAlreadyExists},
		{"storage down", DynamoDBDown(errors.New("boom")), http.StatusServiceUnavailable, CodeDynamoDBDown},
		{"generic not found", NotFound("login not found"), http.StatusNotFound, CodeNotFound},
		{"not implemented", NotImplemented("reserved"), http.StatusNotImplemented, CodeNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.Equal(t, tt.code, tt.err.ErrorCode)
		})
	}
}

func TestDynamoDBDown_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := DynamoDBDown(cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "storage is unavailable", err.Message)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", LoginAlreadyExists())

	e, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeLoginAlreadyExists, e.ErrorCode)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestError_MessageFallsBackToCode(t *testing.T) {
	assert.Equal(t, "DynamoDBDown", ErrDynamoDBDown.Error())
	assert.Equal(t, "login already exists", LoginAlreadyExists().Error())
}
