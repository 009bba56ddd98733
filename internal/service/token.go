package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID string
}

type tokenClaims struct {
	UserID string `json:"id"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access and refresh tokens.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (t *TokenIssuer) IssueAccess(userID string) (string, error) {
	return t.issue(userID, tokenTypeAccess, t.accessTTL)
}

func (t *TokenIssuer) IssueRefresh(userID string) (string, error) {
	return t.issue(userID, tokenTypeRefresh, t.refreshTTL)
}

// Verify checks an access token. It returns ErrTokenExpired for a well-formed
// token past its expiry and ErrTokenInvalid for anything else.
func (t *TokenIssuer) Verify(token string) (Identity, error) {
	return t.verify(token, tokenTypeAccess)
}

func (t *TokenIssuer) VerifyRefresh(token string) (Identity, error) {
	return t.verify(token, tokenTypeRefresh)
}

func (t *TokenIssuer) issue(userID, typ string, ttl time.Duration) (string, error) {
	now := t.now()
	claims := tokenClaims{
		UserID: userID,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *TokenIssuer) verify(token, typ string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrTokenMissing
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}

	if claims.UserID == "" || claims.Type != typ {
		return Identity{}, ErrTokenInvalid
	}

	return Identity{UserID: claims.UserID}, nil
}
