// Package token issues and verifies signed bearer tokens carrying a user identity.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
)

// Claims is the identity payload embedded in every issued token.
type Claims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens with a process-wide shared secret.
type Codec struct {
	signKey []byte
}

// NewCodec constructs a Codec from the shared signing secret.
func NewCodec(signKey []byte) *Codec {
	return &Codec{signKey: signKey}
}

// Issue creates a signed token for u expiring at now + ttl.
func (c *Codec) Issue(u model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.signKey)
}

// Verify parses raw, checks the HS256 signature and expiry, and returns the
// embedded claims. Malformed, mis-signed, and expired tokens all map to
// errs.ErrInvalidToken. No leeway is applied, so a token expires exactly at
// its embedded deadline.
func (c *Codec) Verify(raw string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, errs.ErrInvalidToken
	}
	return claims, nil
}
