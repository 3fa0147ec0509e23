// Package rescode generates human-shareable reservation codes.
package rescode

import (
	"crypto/rand"
	"strings"
)

// Alphabet excludes visually ambiguous symbols (0/O, 1/I/L).
const (
	Alphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	CodeLength = 8
)

// Generate returns "PREFIX-XXXXXXXX" with eight symbols drawn uniformly from
// the alphabet. Uniqueness is enforced by the store, not here.
func Generate(prefix string) string {
	buf := make([]byte, CodeLength)

	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(buf)

	code := make([]byte, CodeLength)
	for i, b := range buf {
		code[i] = Alphabet[int(b)%len(Alphabet)]
	}

	return strings.ToUpper(prefix) + "-" + string(code)
}

// Normalize strips all whitespace and uppercases a user-entered code so that
// lookups tolerate copy/paste artifacts.
func Normalize(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}
