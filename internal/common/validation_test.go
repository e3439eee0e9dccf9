package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profnet/pkg/errors"
)

func TestValidateHandle(t *testing.T) {
	tests := []struct {
		name    string
		handle  string
		wantErr bool
	}{
		{"valid", "alice_99", false},
		{"minimum length", "abc", false},
		{"too short", "ab", true},
		{"too long", string(make([]byte, 51)), true},
		{"illegal characters", "alice!", true},
		{"spaces", "alice smith", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHandle(tt.handle)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Password123"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(string(make([]byte, 101))))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("Alice.Smith+work@sub.example.co"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}

func TestParseBirthdate(t *testing.T) {
	parsed, err := ParseBirthdate("1990-06-15")
	require.NoError(t, err)
	require.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), parsed.UTC())

	_, err = ParseBirthdate("15/06/1990")
	require.Error(t, err)
}
