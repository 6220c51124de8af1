package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	user, err := CreateUser("tester", "tester@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "tester", user.Name)
	assert.Equal(t, "tester@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password, "plaintext must never be stored")
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserAcceptsAnyNonEmptyEmail(t *testing.T) {
	// Emails are opaque strings; only emptiness and uniqueness reject
	user, err := CreateUser("tester", "not-an-email", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "not-an-email", user.Email)
}

func TestCreateUserRejectsEmptyEmail(t *testing.T) {
	_, err := CreateUser("tester", "", "secret123")
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
	assert.False(t, CheckPasswordHash("hunter2", "not-a-hash"))
}
