package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "careerlift",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	tokens := testTokenService()
	hashed, err := tokens.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, tokens.VerifyPassword("s3cret-pass", hashed))
	assert.False(t, tokens.VerifyPassword("wrong-pass", hashed))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	tokens := testTokenService()
	first, err := tokens.HashPassword("same-input")
	require.NoError(t, err)
	second, err := tokens.HashPassword("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordBcryptFallback(t *testing.T) {
	tokens := testTokenService()
	hashed, err := bcrypt.GenerateFromPassword([]byte("legacy-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, tokens.VerifyPassword("legacy-pass", string(hashed)))
	assert.False(t, tokens.VerifyPassword("other", string(hashed)))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tokens := testTokenService()
	signed, exp, err := tokens.CreateAccessToken("user-1", "a@b.c", ActorFlags{IsStudent: true, IsMentor: true})
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	token, claims, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, true, claims["student"])
	assert.Equal(t, true, claims["mentor"])
	assert.Equal(t, false, claims["admin"])
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	tokens := testTokenService()
	signed, err := tokens.CreateRefreshToken("user-1")
	require.NoError(t, err)

	token, claims, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "refresh", claims["typ"])
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tokens := testTokenService()
	signed, _, err := tokens.CreateAccessToken("user-1", "a@b.c", ActorFlags{})
	require.NoError(t, err)

	other := testTokenService()
	other.Secret = []byte("different-secret")
	_, _, err = other.ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	tokens := testTokenService()
	tokens.Issuer = "someone-else"
	signed, _, err := tokens.CreateAccessToken("user-1", "a@b.c", ActorFlags{})
	require.NoError(t, err)

	_, _, err = testTokenService().ParseToken(signed)
	assert.Error(t, err)
}
