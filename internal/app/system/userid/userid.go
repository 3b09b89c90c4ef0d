// internal/app/system/userid/userid.go

// Package userid generates the public user identifiers stored as the _id of
// user documents: "SANGAM_" followed by eight uppercase alphanumerics.
//
// The random suffix alone is not guaranteed unique; callers must insert with
// the id as the document key and regenerate on a duplicate-key error.
package userid

import (
	"crypto/rand"
	"fmt"
)

const (
	// Prefix is the fixed lead-in of every user id.
	Prefix = "SANGAM_"

	suffixLen = 8
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// New returns a freshly generated user id.
func New() (string, error) {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("userid: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return Prefix + string(buf), nil
}

// IsWellFormed reports whether id has the generated shape. It says nothing
// about whether a record with that id exists.
func IsWellFormed(id string) bool {
	if len(id) != len(Prefix)+suffixLen || id[:len(Prefix)] != Prefix {
		return false
	}
	for i := len(Prefix); i < len(id); i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
