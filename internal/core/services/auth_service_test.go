package services_test

import (
	"errors"
	"testing"

	"antlogistics/internal/core/domain"
	"antlogistics/internal/core/services"
)

// ── Tests ────────────────────────────────────────────────────────────────

func TestAuthenticateSuccess(t *testing.T) {
	_, _, _, operatorSvc, authSvc, ctx := setupServices(t)

	seedOperator(t, operatorSvc, ctx, "Alice", "correct-horse-1")

	result, err := authSvc.Authenticate(ctx, "ALICE", "correct-horse-1")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if !result.Success {
		t.Fatal("Expected successful login")
	}
	if result.Username != "alice" {
		t.Errorf("Expected username 'alice', got %q", result.Username)
	}
	if result.Token == "" {
		t.Error("Expected a session token")
	}
	if result.ExpiresAt.IsZero() {
		t.Error("Expected an expiry time")
	}
}

func TestAuthenticateStampsLastLogin(t *testing.T) {
	_, _, _, operatorSvc, authSvc, ctx := setupServices(t)

	operator := seedOperator(t, operatorSvc, ctx, "bob", "correct-horse-2")
	if operator.LastLoginAt != nil {
		t.Fatal("Expected no last login before first authentication")
	}

	if _, err := authSvc.Authenticate(ctx, "bob", "correct-horse-2"); err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	refreshed, err := operatorSvc.GetByID(ctx, operator.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if refreshed.LastLoginAt == nil {
		t.Error("Expected last login to be stamped after authentication")
	}
}

func TestAuthenticateFailsClosed(t *testing.T) {
	_, _, _, operatorSvc, authSvc, ctx := setupServices(t)

	seedOperator(t, operatorSvc, ctx, "carol", "correct-horse-3")

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown username", "nobody", "correct-horse-3"},
		{"wrong password", "carol", "wrong-password"},
		{"blank username", "", "correct-horse-3"},
		{"blank password", "carol", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := authSvc.Authenticate(ctx, tc.username, tc.password)
			if err != nil {
				t.Fatalf("Authenticate returned error: %v", err)
			}
			if result.Success {
				t.Error("Expected unsuccessful login")
			}
			// Failure responses are indistinguishable by shape
			if result.Username != "" || result.Token != "" || !result.ExpiresAt.IsZero() {
				t.Error("Expected failure result to carry no session details")
			}
		})
	}
}

func TestAuthenticateRejectsInactiveOperator(t *testing.T) {
	_, _, _, operatorSvc, authSvc, ctx := setupServices(t)

	operator := seedOperator(t, operatorSvc, ctx, "erin", "correct-horse-5")

	inactive := false
	if _, err := operatorSvc.Update(ctx, operator.ID, "different-admin", &services.UpdateOperatorInput{
		IsActive: &inactive,
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	result, err := authSvc.Authenticate(ctx, "erin", "correct-horse-5")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if result.Success {
		t.Error("Expected login to fail for inactive operator")
	}
}

func TestValidateSessionRoundTrip(t *testing.T) {
	_, _, _, operatorSvc, authSvc, ctx := setupServices(t)

	operator := seedOperator(t, operatorSvc, ctx, "frank", "correct-horse-6")

	result, err := authSvc.Authenticate(ctx, "frank", "correct-horse-6")
	if err != nil || !result.Success {
		t.Fatalf("Authenticate failed: success=%v err=%v", result != nil && result.Success, err)
	}

	session, err := authSvc.ValidateSession(result.Token)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if session.OperatorID != operator.ID {
		t.Errorf("Expected operator ID %s, got %s", operator.ID, session.OperatorID)
	}
	if session.Username != "frank" {
		t.Errorf("Expected username 'frank', got %q", session.Username)
	}
	if session.Role != "operator" {
		t.Errorf("Expected role 'operator', got %q", session.Role)
	}
}

func TestValidateSessionRejectsGarbage(t *testing.T) {
	_, _, _, _, authSvc, _ := setupServices(t)

	for _, artifact := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := authSvc.ValidateSession(artifact); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("Expected unauthenticated for %q, got %v", artifact, err)
		}
	}
}
