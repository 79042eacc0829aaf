package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/Paintersrp/rnote/internal/auth"
)

func sign(t *testing.T, claims auth.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestParseUnverified(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	token := sign(t, auth.Claims{
		UserID:         42,
		Username:       "ryan",
		Email:          "ryan@example.com",
		StandardClaims: jwt.StandardClaims{ExpiresAt: exp.Unix()},
	})

	claims, err := auth.ParseUnverified(" " + token + "\n")
	if err != nil {
		t.Fatalf("ParseUnverified returned error: %v", err)
	}

	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Identity() != "ryan <ryan@example.com>" {
		t.Fatalf("unexpected subject %q", claims.Identity())
	}
	if !claims.Expiry().Equal(exp) {
		t.Fatalf("expected expiry %s, got %s", exp, claims.Expiry())
	}
	if claims.Expired(time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected token to still be valid before expiry")
	}
	if !claims.Expired(exp) {
		t.Fatal("expected token to be expired at its expiry time")
	}
}

func TestParseUnverifiedWithoutExpiry(t *testing.T) {
	claims, err := auth.ParseUnverified(sign(t, auth.Claims{Email: "a@example.com"}))
	if err != nil {
		t.Fatalf("ParseUnverified returned error: %v", err)
	}
	if !claims.Expiry().IsZero() {
		t.Fatalf("expected no expiry, got %s", claims.Expiry())
	}
	if claims.Expired(time.Now()) {
		t.Fatal("expected a token without expiry never to expire")
	}
	if claims.Identity() != "a@example.com" {
		t.Fatalf("unexpected subject %q", claims.Identity())
	}
}

func TestParseUnverifiedRejectsGarbage(t *testing.T) {
	if _, err := auth.ParseUnverified(""); !errors.Is(err, auth.ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
	if _, err := auth.ParseUnverified("not-a-token"); err == nil {
		t.Fatal("expected malformed token to fail")
	}
}
