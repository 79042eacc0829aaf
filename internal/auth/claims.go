// Package auth inspects the bearer tokens issued by the note service.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

var ErrEmptyToken = errors.New("token is empty")

// Claims are the fields the service puts in its tokens.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.StandardClaims
}

// ParseUnverified decodes the token's claims without checking the signature.
// The client never holds the signing key; the server remains the judge of
// validity.
func ParseUnverified(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	claims := &Claims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	return claims, nil
}

// Expiry returns the expiry time, or the zero time when the token never
// expires.
func (c *Claims) Expiry() time.Time {
	if c.StandardClaims.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(c.StandardClaims.ExpiresAt, 0)
}

func (c *Claims) Expired(now time.Time) bool {
	exp := c.Expiry()
	return !exp.IsZero() && !now.Before(exp)
}

// Identity names the user the token was issued to.
func (c *Claims) Identity() string {
	switch {
	case c.Username != "" && c.Email != "":
		return fmt.Sprintf("%s <%s>", c.Username, c.Email)
	case c.Username != "":
		return c.Username
	case c.Email != "":
		return c.Email
	default:
		return c.StandardClaims.Subject
	}
}
