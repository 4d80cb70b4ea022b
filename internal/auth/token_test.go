package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
)

func TestTokenRoundTrip(t *testing.T) {
	provider := NewTokenProvider("test-secret", time.Hour)

	token, err := provider.Generate(42, "hr@magnolias.cl", RoleCompany)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("expected token to parse, got %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Email != "hr@magnolias.cl" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if claims.Role != RoleCompany {
		t.Fatalf("expected role %q, got %q", RoleCompany, claims.Role)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
}

func TestTokenParse_WrongSecret(t *testing.T) {
	token, err := NewTokenProvider("secret-a", time.Hour).Generate(1, "a@b.c", RoleApplicant)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err = NewTokenProvider("secret-b", time.Hour).Parse(token)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestTokenParse_Expired(t *testing.T) {
	provider := NewTokenProvider("test-secret", -time.Minute)

	token, err := provider.Generate(1, "a@b.c", RoleApplicant)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := provider.Parse(token); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for expired token, got %v", err)
	}
}

func TestTokenParse_Garbage(t *testing.T) {
	provider := NewTokenProvider("test-secret", time.Hour)
	if _, err := provider.Parse("not-a-token"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for garbage input, got %v", err)
	}
}
