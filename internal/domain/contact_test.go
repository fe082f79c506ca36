package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		msg     *ContactMessage
		missing string
	}{
		{"valid", NewContactMessage("Sam", "sam@example.com", "Hi", "Hello there"), ""},
		{"missing name", NewContactMessage("", "sam@example.com", "Hi", "Hello"), "name"},
		{"missing email", NewContactMessage("Sam", "", "Hi", "Hello"), "email"},
		{"missing subject", NewContactMessage("Sam", "sam@example.com", "", "Hello"), "subject"},
		{"missing message", NewContactMessage("Sam", "sam@example.com", "Hi", ""), "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}
