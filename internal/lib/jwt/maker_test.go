package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/review-platform/internal/errs"
)

func TestJWTMaker_GenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker("test-secret-key", time.Hour)

	token, err := maker.GenerateToken(42, "johndoe", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "johndoe", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTMaker_ParseToken_Expired(t *testing.T) {
	maker := NewJWTMaker("test-secret-key", -time.Minute)

	token, err := maker.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTokenExpired)
	assert.NotErrorIs(t, err, errs.ErrInvalidToken)
}

func TestJWTMaker_ParseToken_WrongSecret(t *testing.T) {
	maker := NewJWTMaker("test-secret-key", time.Hour)
	other := NewJWTMaker("another-secret", time.Hour)

	token, err := maker.GenerateToken(1, "johndoe", "user")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestJWTMaker_ParseToken_Garbage(t *testing.T) {
	maker := NewJWTMaker("test-secret-key", time.Hour)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := maker.ParseToken(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken, "token: %q", token)
	}
}
