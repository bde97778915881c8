package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompareHash(t *testing.T) {
	hash, err := GetHash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, CompareHash(hash, "password123"))
	assert.Error(t, CompareHash(hash, "wrongpassword"))
}

func TestGetHash_DifferentSalts(t *testing.T) {
	first, err := GetHash("admin123")
	require.NoError(t, err)
	second, err := GetHash("admin123")
	require.NoError(t, err)

	// bcrypt солит каждый хэш, одинаковые пароли дают разные хэши
	assert.NotEqual(t, first, second)
	assert.NoError(t, CompareHash(first, "admin123"))
	assert.NoError(t, CompareHash(second, "admin123"))
}
