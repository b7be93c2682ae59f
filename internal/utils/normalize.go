package utils

import "strings"

// NormalizeName lowercases a display or OCR name and strips everything that is
// not a letter or digit, so "Gold Chain", "gold-chain", and "gold_chain" index
// identically. Stack suffixes like "x2" are not stripped here; the resolver
// parses those out before matching.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
