// Package session holds the session lifecycle of the auth demo: the
// in-memory refresh-token store, the fixed credential check and the
// service orchestrating login, refresh and logout. The HTTP layer maps
// the two sentinel errors to generic 401 rejections and never learns
// which sub-cause fired.
package session

import (
	"errors"
	"fmt"

	"AuthCore/pkg/token"
)

var (
	// ErrInvalidCredentials - the submitted username/password pair is wrong.
	// Deliberately covers both fields with one error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken - refresh token unknown, expired, revoked or failing
	// signature verification.
	ErrInvalidToken = errors.New("invalid token")
)

const tokenTypeBearer = "Bearer"

// TokenPair is the payload returned by Login and Refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Service orchestrates the session lifecycle over the store, the token
// issuer and the credential validator. Safe for concurrent use.
type Service struct {
	store  *Store
	issuer *token.Issuer
	creds  Credentials
}

func NewService(store *Store, issuer *token.Issuer, creds Credentials) *Service {
	return &Service{
		store:  store,
		issuer: issuer,
		creds:  creds,
	}
}

// Login validates the credential pair, issues an access/refresh token pair
// and persists the refresh token.
func (s *Service) Login(username, password string) (*TokenPair, error) {
	const op = "session.Login"

	if !s.creds.Validate(username, password) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	access, err := s.issuer.IssueAccessToken(username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := s.issuer.IssueRefreshToken(username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.store.Save(refresh, username, s.issuer.RefreshTTL())

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    tokenTypeBearer,
	}, nil
}

// Refresh exchanges a stored refresh token for a new access token. The
// refresh token itself is returned unchanged: no rotation.
func (s *Service) Refresh(refreshToken string) (*TokenPair, error) {
	const op = "session.Refresh"

	owner, ok := s.store.Verify(refreshToken)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	// re-check the signature; a store hit with a bad signature means the
	// store and the token disagree, reject it
	claims, err := s.issuer.Verify(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	if claims.Subject != owner {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	access, err := s.issuer.IssueAccessToken(owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
	}, nil
}

// Logout revokes the refresh token. Idempotent: revoking an unknown or
// already revoked token is still a success.
func (s *Service) Logout(refreshToken string) {
	s.store.Revoke(refreshToken)
}
