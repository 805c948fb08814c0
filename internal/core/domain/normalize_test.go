package domain_test

import (
	"testing"

	"antlogistics/internal/core/domain"
)

func TestNormalizeSKU(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"WIDGET-1", "widget-1"},
		{"  Widget-1  ", "widget-1"},
		{"widget-1", "widget-1"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := domain.NormalizeSKU(tc.in); got != tc.want {
			t.Errorf("NormalizeSKU(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeCountryCode(t *testing.T) {
	if got := domain.NormalizeCountryCode("  nl "); got != "NL" {
		t.Errorf("NormalizeCountryCode = %q, want NL", got)
	}
}

func TestValidCountryCode(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"NL", true},
		{"DE", true},
		{"NLD", false},
		{"N", false},
		{"N1", false},
		{"nl", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := domain.ValidCountryCode(tc.in); got != tc.want {
			t.Errorf("ValidCountryCode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	if !domain.ValidRole(domain.RoleOperator) || !domain.ValidRole(domain.RoleAdmin) {
		t.Error("Expected operator and admin to be valid roles")
	}
	if domain.ValidRole(domain.Role("superuser")) || domain.ValidRole(domain.Role("")) {
		t.Error("Expected unknown roles to be invalid")
	}
}

func TestBlank(t *testing.T) {
	if !domain.Blank("") || !domain.Blank("   ") || !domain.Blank("\t\n") {
		t.Error("Expected whitespace-only strings to be blank")
	}
	if domain.Blank("x") || domain.Blank("  x  ") {
		t.Error("Expected non-empty strings to not be blank")
	}
}
