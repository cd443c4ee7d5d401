package util

import (
	"fmt"
	"regexp"
	"strings"
)

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// validSubdomainChars matches lowercase alphanumerics and hyphens.
var validSubdomainChars = regexp.MustCompile(`^[a-z0-9\-]+$`)

// ValidateSubdomain checks that a subdomain conforms to the panel's
// DNS-label rules before the availability round trip:
//   - 3 to 63 characters
//   - Only lowercase alphanumerics (a-z, 0-9) and hyphens (-)
//   - First and last characters must be alphanumeric
func ValidateSubdomain(subdomain string) error {
	if len(subdomain) < 3 || len(subdomain) > 63 {
		return fmt.Errorf("subdomain must be 3-63 characters, got %d", len(subdomain))
	}

	if !validSubdomainChars.MatchString(subdomain) {
		return fmt.Errorf("subdomain %q contains invalid characters (only a-z, 0-9, and hyphens are allowed)", subdomain)
	}

	if subdomain[0] == '-' || subdomain[len(subdomain)-1] == '-' {
		return fmt.Errorf("subdomain must not start or end with a hyphen, got %q", subdomain)
	}

	return nil
}
