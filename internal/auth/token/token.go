// Package token issues signed JWT access tokens.
package token

import (
	"time"

	"leadflow_backend/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer signs access tokens for authenticated users.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(cfg config.AuthServiceConfig) *Issuer {
	return &Issuer{
		secret: []byte(cfg.GetJWTAccessSecret()),
		ttl:    cfg.GetAccessTokenTTL(),
	}
}

// IssueAccessToken mints an HS256 access token with the user id as subject.
// The "type" claim distinguishes access tokens from any future token kinds.
func (i *Issuer) IssueAccessToken(userID uuid.UUID, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"type":  "access",
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
