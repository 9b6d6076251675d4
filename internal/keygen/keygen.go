// Package keygen generates ACF unique keys.
package keygen

import (
	"math/rand"
	"strings"
)

// ACF key namespaces.
const (
	FieldPrefix = "field"
	GroupPrefix = "group"
)

// SuffixLen is the length of the random part of an ACF key.
const SuffixLen = 13

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Suffix returns length characters drawn uniformly from [a-z0-9].
// Not cryptographically secure; collisions in a 36^13 space are acceptable here.
func Suffix(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

// New returns prefix + "_" + a SuffixLen random suffix.
func New(prefix string) string {
	return prefix + "_" + Suffix(SuffixLen)
}

// Valid reports whether key has the exact <prefix>_<13 x [a-z0-9]> shape.
func Valid(key, prefix string) bool {
	rest, ok := strings.CutPrefix(key, prefix+"_")
	if !ok || len(rest) != SuffixLen {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if strings.IndexByte(alphabet, rest[i]) < 0 {
			return false
		}
	}
	return true
}
