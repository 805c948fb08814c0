package domain

import "strings"

// Role represents an operator role in the system
type Role string

const (
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is one of the closed set of roles
func ValidRole(r Role) bool {
	return r == RoleOperator || r == RoleAdmin
}

// NormalizeSKU returns the canonical (trimmed, lowercase) form of a SKU
func NormalizeSKU(sku string) string {
	return strings.ToLower(strings.TrimSpace(sku))
}

// NormalizeCode returns the canonical (trimmed, lowercase) form of a
// warehouse code
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// NormalizeUsername returns the canonical (trimmed, lowercase) form of a
// username
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeCountryCode returns the canonical (trimmed, uppercase) form of an
// ISO 3166-1 alpha-2 country code
func NormalizeCountryCode(cc string) string {
	return strings.ToUpper(strings.TrimSpace(cc))
}

// ValidCountryCode reports whether cc (already normalized) is exactly two
// ASCII letters
func ValidCountryCode(cc string) bool {
	if len(cc) != 2 {
		return false
	}
	for _, r := range cc {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Blank reports whether s is empty or whitespace-only
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
