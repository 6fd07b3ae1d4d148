package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("secret124", hash))
}

func TestHashPasswordSaltVaries(t *testing.T) {
	h1, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	// embedded random salt makes identical inputs hash differently
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("secret123", h1))
	assert.True(t, CheckPassword("secret123", h2))
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("", bcrypt.MinCost)
	assert.Error(t, err)
}

func TestHashPasswordBadCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret123", 99)
	require.NoError(t, err)
	assert.True(t, CheckPassword("secret123", hash))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("secret123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("secret123", ""))
}
