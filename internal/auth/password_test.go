package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, ComparePassword(hash, "hunter2hunter2"))
	assert.False(t, ComparePassword(hash, "wrong-password"))
}

func TestHashPasswordFallsBackOnBadCost(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2", 0)
	require.NoError(t, err)
	assert.True(t, ComparePassword(hash, "hunter2hunter2"))

	hash, err = HashPassword("hunter2hunter2", 99)
	require.NoError(t, err)
	assert.True(t, ComparePassword(hash, "hunter2hunter2"))
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("same-password", 4)
	require.NoError(t, err)
	b, err := HashPassword("same-password", 4)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
