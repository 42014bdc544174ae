package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the claim set carried by every issued token: sub/iat/exp plus
// a random jti so two tokens for the same subject are never byte-equal.
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens. Construct with NewIssuer; the
// secret and TTLs are fixed for the lifetime of the instance.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken returns a short-lived signed token for owner.
func (i *Issuer) IssueAccessToken(owner string) (string, error) {
	return i.issue(owner, i.accessTTL)
}

// IssueRefreshToken returns a long-lived signed token for owner.
func (i *Issuer) IssueRefreshToken(owner string) (string, error) {
	return i.issue(owner, i.refreshTTL)
}

func (i *Issuer) issue(owner string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   owner,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			// only accept HMAC signing
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenUnverifiable
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("token: verify: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("token: verify: %w", jwt.ErrTokenInvalidClaims)
	}
	return claims, nil
}

// RefreshTTL is the validity window refresh tokens are issued with; the
// session store uses it as the record TTL so both expire together.
func (i *Issuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}
