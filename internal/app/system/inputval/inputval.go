// internal/app/system/inputval/inputval.go

// Package inputval validates user-supplied registration fields.
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a plain RFC 5322 address.
// Display-name forms ("Name <a@b>") are rejected; only the bare address is
// accepted, since that is what gets stored and matched by the unique index.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	local, domain := s[:at], s[at+1:]
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return true
}

// IsValidMobile reports whether s looks like a dialable phone number:
// an optional leading "+", then 7–15 digits, with spaces and dashes ignored.
func IsValidMobile(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
			// separators are fine
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}
