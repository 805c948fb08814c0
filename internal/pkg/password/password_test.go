package password_test

import (
	"testing"

	"antlogistics/internal/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse-battery")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "correct-horse-battery" {
		t.Fatal("Expected hash to differ from plaintext")
	}

	if !password.Verify("correct-horse-battery", hash) {
		t.Error("Expected correct password to verify")
	}
	if password.Verify("wrong-password", hash) {
		t.Error("Expected wrong password to fail verification")
	}
	if password.Verify("correct-horse-battery", "not-a-bcrypt-hash") {
		t.Error("Expected malformed hash to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same-password-1")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := password.Hash("same-password-1")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if first == second {
		t.Error("Expected two hashes of the same password to differ")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12345678", true},
		{"long-enough-pass", true},
		{"1234567", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := password.ValidatePassword(tc.in); got != tc.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
