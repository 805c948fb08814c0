package jwt_test

import (
	"errors"
	"testing"
	"time"

	"antlogistics/internal/pkg/jwt"
)

const testSecret = "test_secret"

func TestGenerateAndValidateSessionToken(t *testing.T) {
	token, expiresAt, err := jwt.GenerateSessionToken(
		"op-123", "alice", "admin", "jti-1", testSecret, 30)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}

	remaining := time.Until(expiresAt)
	if remaining < 29*time.Minute || remaining > 31*time.Minute {
		t.Errorf("Expected expiry ~30 minutes out, got %s", remaining)
	}

	claims, err := jwt.ValidateSessionToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateSessionToken failed: %v", err)
	}
	if claims.OperatorID != "op-123" {
		t.Errorf("Expected operator ID 'op-123', got %q", claims.OperatorID)
	}
	if claims.Username != "alice" {
		t.Errorf("Expected username 'alice', got %q", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("Expected role 'admin', got %q", claims.Role)
	}
	if claims.ID != "jti-1" {
		t.Errorf("Expected token ID 'jti-1', got %q", claims.ID)
	}
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	token, _, err := jwt.GenerateSessionToken(
		"op-123", "alice", "operator", "jti-2", testSecret, 30)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, err := jwt.ValidateSessionToken(token, "other_secret"); !errors.Is(err, jwt.ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateSessionTokenExpired(t *testing.T) {
	// Expiry must lie beyond the clock skew leeway to be rejected
	token, _, err := jwt.GenerateSessionToken(
		"op-123", "alice", "operator", "jti-3", testSecret, -5)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, err := jwt.ValidateSessionToken(token, testSecret); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("Expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateSessionTokenWithinLeeway(t *testing.T) {
	// A token expired less than the leeway ago is still accepted
	token, _, err := jwt.GenerateSessionToken(
		"op-123", "alice", "operator", "jti-4", testSecret, -1)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, err := jwt.ValidateSessionToken(token, testSecret); err != nil {
		t.Errorf("Expected token within leeway to validate, got %v", err)
	}
}

func TestValidateSessionTokenMalformed(t *testing.T) {
	for _, artifact := range []string{"", "garbage", "a.b.c"} {
		if _, err := jwt.ValidateSessionToken(artifact, testSecret); !errors.Is(err, jwt.ErrTokenInvalid) {
			t.Errorf("Expected ErrTokenInvalid for %q, got %v", artifact, err)
		}
	}
}
