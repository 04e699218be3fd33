package utils

import "strings"

// NormalizeEmail lowercases and trims an email address. Accounts are
// keyed by the normalized form; every lookup and write must use it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
