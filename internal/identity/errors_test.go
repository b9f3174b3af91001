package identity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_CodeAndMessage(t *testing.T) {
	tests := []struct {
		kind    ErrorKind
		code    string
		message string
	}{
		{KindInvalidCredential, "auth/invalid-credential", "Invalid credential"},
		{KindEmailInUse, "auth/email-already-in-use", "Email already in use"},
		{KindWeakPassword, "auth/weak-password", "Weak password"},
		{KindNetwork, "auth/network-request-failed", "Network request failed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := NewError(tt.kind, nil)
			assert.Equal(t, tt.code, err.Code())
			assert.Equal(t, tt.message, err.Message())
			assert.Equal(t, tt.code, err.Error())
		})
	}
}

func TestError_IsMatchesKindThroughWrapping(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := fmt.Errorf("login: %w", NewError(KindNetwork, cause))

	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrInvalidCredential)
	assert.ErrorIs(t, err, cause)
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(nil))

	known := NewError(KindWeakPassword, nil)
	assert.Same(t, known, AsError(fmt.Errorf("wrapped: %w", known)))

	unknown := AsError(errors.New("boom"))
	assert.Equal(t, KindInternal, unknown.Kind)
	assert.Equal(t, "auth/internal-error: boom", unknown.Error())
}
