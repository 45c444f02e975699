// Package refdata holds the static reference tables behind every analysis:
// canonical business types, regional multipliers, curated commercial-area
// profiles, and the normalization functions that map free-text Korean input
// onto them. All tables are read-only after init; pattern tables are ordered
// and the first matching entry wins, so more specific entries are declared
// before broader ones.
package refdata

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Pattern maps a substring to a canonical key. Order of declaration in a
// pattern table encodes precedence.
type Pattern struct {
	Match string
	Key   string
}

// Canonicalize prepares free-text input for table matching: NFC
// normalization (IME variance), whitespace stripped, lowercased.
func Canonicalize(input string) string {
	s := norm.NFC.String(input)
	s = strings.Join(strings.Fields(s), "")
	return strings.ToLower(s)
}

// matchFirst returns the key of the first pattern whose Match is contained
// in the canonicalized input, or "" when nothing matches.
func matchFirst(patterns []Pattern, input string) string {
	c := Canonicalize(input)
	for _, p := range patterns {
		if strings.Contains(c, Canonicalize(p.Match)) {
			return p.Key
		}
	}
	return ""
}
