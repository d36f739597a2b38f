package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/L4U04/salvaluno/config"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret",
		AccessTokenTTL:          accessTTL,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 30 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("u1", "campus-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("expected user u1, got %q", claims.UserID)
	}
	if claims.CampusID != "campus-1" {
		t.Errorf("expected campus-1, got %q", claims.CampusID)
	}
	if claims.TokenType != "access" {
		t.Errorf("expected access type, got %q", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("token must carry a jti for revocation")
	}
	if claims.Issuer != "salvaluno" {
		t.Errorf("unexpected issuer %q", claims.Issuer)
	}
}

func TestGenerateRefreshToken_TTLVariants(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	short, err := m.GenerateRefreshToken("u1", "", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}
	long, err := m.GenerateRefreshToken("u1", "", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	shortClaims, err := m.ParseToken(short)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	longClaims, err := m.ParseToken(long)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if shortClaims.TokenType != "refresh" || longClaims.TokenType != "refresh" {
		t.Error("both tokens must be refresh tokens")
	}
	if shortClaims.RememberMe || !longClaims.RememberMe {
		t.Error("remember_me flag must match the request")
	}
	if !longClaims.ExpiresAt.After(shortClaims.ExpiresAt.Time) {
		t.Error("remember-me token must outlive the default one")
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.GenerateAccessToken("u1", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager(15 * time.Minute)
	other := NewManager(&config.AuthConfig{
		JWTSecret:      "a-different-secret",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, err := m.GenerateAccessToken("u1", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	if _, err := m.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAccessTokenTTL(t *testing.T) {
	m := newTestManager(20 * time.Minute)
	if m.AccessTokenTTL() != 20*time.Minute {
		t.Errorf("expected 20m, got %v", m.AccessTokenTTL())
	}
}
