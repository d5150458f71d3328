package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/digitalcoban/coban/internal/domain/user/valueobjects"
)

func mustEmail(t *testing.T, value string) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail(value)
	require.NoError(t, err)
	return email
}

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("ahmet", mustEmail(t, "ahmet@example.com"), "$2a$12$hash")
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t)

	assert.Equal(t, uint(0), u.ID())
	assert.NotEmpty(t, u.UUID())
	assert.Equal(t, "ahmet", u.Username())
	assert.Equal(t, "ahmet@example.com", u.Email().String())
	assert.Equal(t, "$2a$12$hash", u.PasswordHash())
	assert.Equal(t, 1, u.Version())
	assert.Empty(t, u.Phone())
	assert.Empty(t, u.Address())
}

func TestNewUser_Validation(t *testing.T) {
	email := mustEmail(t, "ahmet@example.com")

	_, err := NewUser("", email, "$2a$12$hash")
	assert.Error(t, err)

	_, err = NewUser("ahmet", nil, "$2a$12$hash")
	assert.Error(t, err)

	_, err = NewUser("ahmet", email, "")
	assert.Error(t, err)
}

func TestReconstructUser(t *testing.T) {
	now := time.Now().UTC()
	params := UserReconstructParams{
		ID:           3,
		UUID:         "11111111-2222-3333-4444-555555555555",
		Username:     "ahmet",
		Email:        mustEmail(t, "ahmet@example.com"),
		Phone:        "+905551112233",
		Address:      "Ankara",
		PasswordHash: "$2a$12$hash",
		Version:      4,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	u, err := ReconstructUser(params)
	require.NoError(t, err)
	assert.Equal(t, uint(3), u.ID())
	assert.Equal(t, "+905551112233", u.Phone())
	assert.Equal(t, 4, u.Version())

	params.ID = 0
	_, err = ReconstructUser(params)
	assert.Error(t, err)

	params.ID = 3
	params.Email = nil
	_, err = ReconstructUser(params)
	assert.Error(t, err)
}

func TestUser_SetID(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.SetID(5))
	assert.Equal(t, uint(5), u.ID())

	assert.Error(t, u.SetID(6))
	assert.Error(t, newTestUser(t).SetID(0))
}

func TestUser_UpdateContact(t *testing.T) {
	u := newTestUser(t)

	u.UpdateContact("+905551112233", "Konya")

	assert.Equal(t, "+905551112233", u.Phone())
	assert.Equal(t, "Konya", u.Address())
	assert.Equal(t, 2, u.Version())
}
