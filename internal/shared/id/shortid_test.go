package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	generated, err := Generate(16)
	require.NoError(t, err)
	assert.Len(t, generated, 16)

	for _, r := range generated {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerate_DefaultsLength(t *testing.T) {
	generated, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, generated, DefaultLength)

	generated, err = Generate(-3)
	require.NoError(t, err)
	assert.Len(t, generated, DefaultLength)
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		generated, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[generated], "duplicate ID generated: %s", generated)
		seen[generated] = true
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	generated, err := GenerateWithPrefix(PrefixAnimal, DefaultLength)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(generated, "anm_"))
	assert.Len(t, generated, len(PrefixAnimal)+1+DefaultLength)
}

func TestParsePrefixedID(t *testing.T) {
	prefix, shortID, err := ParsePrefixedID("sub_AbC123xYz987")
	require.NoError(t, err)
	assert.Equal(t, "sub", prefix)
	assert.Equal(t, "AbC123xYz987", shortID)

	_, _, err = ParsePrefixedID("noprefix")
	assert.Error(t, err)
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("area_AbC123xYz987", PrefixArea))
	assert.Error(t, ValidatePrefix("anm_AbC123xYz987", PrefixArea))
	assert.Error(t, ValidatePrefix("malformed", PrefixArea))
}

func TestNewSubscriptionSID(t *testing.T) {
	sid, err := NewSubscriptionSID()
	require.NoError(t, err)
	assert.NoError(t, ValidatePrefix(sid, PrefixSubscription))
}
