// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks if an address has a plausible mailbox shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}
