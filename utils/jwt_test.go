package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"aurora/config"
	"aurora/models"
)

func testUser(id uint) *models.User {
	u := &models.User{Email: "head@aurora.com", Role: models.RoleTeamHead}
	u.ID = id
	return u
}

func TestGenerateAndParse_Success(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	access, refresh, err := GenerateJWTToken(testUser(42))
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected non-empty token pair")
	}

	claims, err := ParseJWTToken(access)
	if err != nil {
		t.Fatalf("ParseJWTToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("token type mismatch: got %q want %q", claims.TokenType, TokenTypeAccess)
	}

	refreshClaims, err := ParseJWTToken(refresh)
	if err != nil {
		t.Fatalf("ParseJWTToken error: %v", err)
	}
	if refreshClaims.TokenType != TokenTypeRefresh {
		t.Fatalf("token type mismatch: got %q want %q", refreshClaims.TokenType, TokenTypeRefresh)
	}
}

func TestRefreshTokens_RejectsAccessToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	access, _, err := GenerateJWTToken(testUser(9))
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	// An access token must never mint a new pair, even though it is
	// validly signed.
	if _, _, err := RefreshTokens(access); err == nil {
		t.Fatalf("expected error when refreshing with an access token, got nil")
	}
}

func TestParseJWTToken_WrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "right-secret"
	access, _, err := GenerateJWTToken(testUser(1))
	if err != nil {
		t.Fatalf("GenerateJWTToken error: %v", err)
	}

	config.AppConfig.JWTSecret = "wrong-secret"
	if _, err := ParseJWTToken(access); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseJWTToken_Expired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	claims := &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	if _, err := ParseJWTToken(token); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseJWTToken_Malformed(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	if _, err := ParseJWTToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
