package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	i := NewIssuer(testSecret, 15*time.Minute, 24*time.Hour)

	raw, err := i.IssueAccessToken("admin")
	require.NoError(t, err)

	claims, err := i.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, 15*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestRefreshTokenUsesRefreshTTL(t *testing.T) {
	i := NewIssuer(testSecret, 15*time.Minute, 24*time.Hour)

	raw, err := i.IssueRefreshToken("admin")
	require.NoError(t, err)

	claims, err := i.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.Equal(t, 24*time.Hour, i.RefreshTTL())
}

func TestIssuedTokensAreUnique(t *testing.T) {
	i := NewIssuer(testSecret, 15*time.Minute, 24*time.Hour)

	a, err := i.IssueAccessToken("admin")
	require.NoError(t, err)
	b, err := i.IssueAccessToken("admin")
	require.NoError(t, err)

	// jti makes two tokens for the same subject distinct even within the
	// same second
	assert.NotEqual(t, a, b)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	i := NewIssuer(testSecret, 15*time.Minute, 24*time.Hour)
	other := NewIssuer("other-secret", 15*time.Minute, 24*time.Hour)

	raw, err := other.IssueAccessToken("admin")
	require.NoError(t, err)

	_, err = i.Verify(raw)
	assert.Error(t, err)
}

func TestVerifyRejectsTampered(t *testing.T) {
	i := NewIssuer(testSecret, 15*time.Minute, 24*time.Hour)

	raw, err := i.IssueAccessToken("admin")
	require.NoError(t, err)

	_, err = i.Verify(raw + "x")
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	i := NewIssuer(testSecret, -time.Minute, 24*time.Hour)

	raw, err := i.IssueAccessToken("admin")
	require.NoError(t, err)

	_, err = i.Verify(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	i := NewIssuer(testSecret, 15*time.Minute, 24*time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = i.Verify(raw)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	i := NewIssuer(testSecret, 15*time.Minute, 24*time.Hour)

	_, err := i.Verify("not-a-jwt")
	assert.Error(t, err)
}
