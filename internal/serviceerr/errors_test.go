package serviceerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfed/login-manager/internal/serviceerr"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name        string
		err         *serviceerr.Error
		expectedMsg string
	}{
		{
			name:        "Error with message",
			err:         &serviceerr.Error{Code: serviceerr.CodeStateMismatch, Message: "Incorrect state in response."},
			expectedMsg: "state_mismatch: Incorrect state in response.",
		},
		{
			name:        "Error without message",
			err:         &serviceerr.Error{Code: serviceerr.CodeUnknown},
			expectedMsg: "unknown",
		},
		{
			name:        "Predefined error - ErrSessionExpired",
			err:         serviceerr.ErrSessionExpired,
			expectedMsg: "session_expired: Session has expired.",
		},
		{
			name:        "Predefined error - ErrMissingUsername",
			err:         serviceerr.ErrMissingUsername,
			expectedMsg: "missing_username: Failed to find a username in userinfo from provider.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
		})
	}
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *serviceerr.Error
	}{
		{
			name: "taxonomy error",
			err:  serviceerr.ErrTokenFetch,
			want: serviceerr.ErrTokenFetch,
		},
		{
			name: "wrapped taxonomy error",
			err:  fmt.Errorf("finalising login: %w", serviceerr.ErrStateMismatch),
			want: serviceerr.ErrStateMismatch,
		},
		{
			name: "joined taxonomy error",
			err:  errors.Join(serviceerr.ErrUserInfoFetch, errors.New("connection refused")),
			want: serviceerr.ErrUserInfoFetch,
		},
		{
			name: "unrelated error",
			err:  errors.New("boom"),
			want: serviceerr.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serviceerr.From(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serviceerr.ErrMissingParameter.Status)
	assert.Equal(t, http.StatusForbidden, serviceerr.ErrSessionExpired.Status)
	assert.Equal(t, http.StatusForbidden, serviceerr.ErrStateMismatch.Status)
	assert.Equal(t, http.StatusBadRequest, serviceerr.ErrTokenFetch.Status)
	assert.Equal(t, http.StatusBadRequest, serviceerr.ErrUserInfoFetch.Status)
	assert.Equal(t, http.StatusBadRequest, serviceerr.ErrMissingUsername.Status)
}
