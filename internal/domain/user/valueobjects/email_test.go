package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("  Ahmet@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "ahmet@example.com", email.String(), "email must be trimmed and lowercased")
	assert.Equal(t, "example.com", email.Domain())
}

func TestNewEmail_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"missing at sign", "ahmet.example.com"},
		{"missing domain", "ahmet@"},
		{"missing tld", "ahmet@example"},
		{"too long", strings.Repeat("a", 250) + "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.value)
			assert.Error(t, err)
			assert.Nil(t, email)
		})
	}
}

func TestEmail_Equals(t *testing.T) {
	a, err := NewEmail("ahmet@example.com")
	require.NoError(t, err)
	b, err := NewEmail("AHMET@example.com")
	require.NoError(t, err)
	c, err := NewEmail("mehmet@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	var nilEmail *Email
	assert.True(t, nilEmail.Equals(nil))
}
