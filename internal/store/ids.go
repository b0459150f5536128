package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// NewID returns prefix-<suffix> where suffix is 8 chars of base32 (lowercase,
// no padding). 8 chars base32 ~= 40 bits of space, far beyond what a personal
// organizer will ever hold.
func NewID(prefix string) string {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back to a
		// counter-free but still unique-enough address-based suffix.
		return fmt.Sprintf("%s-%p", prefix, &b)
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:]))
}
