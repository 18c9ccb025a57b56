package login

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForm_LoginEnabled(t *testing.T) {
	tests := []struct {
		username bool
		password bool
		want     bool
	}{
		{false, false, false},
		{true, false, false},
		{false, true, false},
		{true, true, true},
	}

	for _, tt := range tests {
		var f Form
		f.SetUsernameValid(tt.username)
		f.SetPasswordValid(tt.password)

		assert.Equal(t, tt.want, f.LoginEnabled(), "username=%v password=%v", tt.username, tt.password)
		assert.Equal(t, tt.username, f.UsernameValid())
		assert.Equal(t, tt.password, f.PasswordValid())
	}
}

func TestForm_ZeroValueIsDisabled(t *testing.T) {
	var f Form
	assert.False(t, f.UsernameValid())
	assert.False(t, f.PasswordValid())
	assert.False(t, f.LoginEnabled())
}
