// Package taxon normalizes free-text botanical name fragments into display
// strings and comparable tokens, and expands taxonomy records into ordered
// candidate lookup keys.
//
// Inventory exports are messy: stray whitespace, inconsistent casing, hybrid
// markers written three different ways. Every comparison in the engine goes
// through Token so that none of that affects matching.
package taxon

import (
	"strings"
	"unicode"
)

// CollapseSpaces trims the string and collapses every internal whitespace run
// to a single space. All-whitespace input collapses to "".
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DisplayName is the human-facing form of a name fragment: whitespace
// collapsed and the first letter upper-cased, the rest left as typed.
// "camaldulensis" → "Camaldulensis".
func DisplayName(s string) string {
	s = CollapseSpaces(s)
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Token is the comparable form of a name fragment: lowercased with every
// character outside [a-z0-9] dropped. "Eucalyptus camaldulensis" and
// "eucalyptus CAMALDULENSIS " produce the same token. Idempotent: applying
// Token to its own output is a no-op.
func Token(s string) string {
	lower := strings.ToLower(CollapseSpaces(s))
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// hybridMarkers are the spellings that flag a hybrid epithet when they lead
// a species string: plain x, capital X, and the botanical multiplication sign.
var hybridMarkers = map[string]bool{"x": true, "X": true, "×": true}

// StripHybridPrefix drops a leading hybrid marker from a species string and
// returns the remainder, whitespace-collapsed. "x acerifolia" → "acerifolia".
// The marker must stand alone as the first word; "xylosma" is left intact.
func StripHybridPrefix(species string) string {
	fields := strings.Fields(species)
	if len(fields) > 1 && hybridMarkers[fields[0]] {
		return strings.Join(fields[1:], " ")
	}
	return strings.Join(fields, " ")
}

// Epithet reduces a parent taxon string to its bare epithet by removing the
// leading word when it equals genus case-insensitively.
// ("Platanus orientalis", "platanus") → "orientalis".
func Epithet(parent, genus string) string {
	fields := strings.Fields(parent)
	if len(fields) == 0 {
		return ""
	}
	if genus != "" && strings.EqualFold(fields[0], genus) {
		return strings.Join(fields[1:], " ")
	}
	return strings.Join(fields, " ")
}

// StemGenus extracts the genus prefix of a catalog stem written in the
// GenusSpeciesCultivar convention: the leading uppercase letter plus its
// lowercase run. "EucalyptusCamaldulensis" → "Eucalyptus". Stems that do not
// start with an Upper+lower pair keep everything before the first interior
// uppercase letter, and stems with no interior uppercase come back whole, so
// every stem lands in exactly one genus bucket.
func StemGenus(stem string) string {
	runes := []rune(stem)
	if len(runes) == 0 {
		return ""
	}
	if unicode.IsUpper(runes[0]) && len(runes) > 1 && unicode.IsLower(runes[1]) {
		end := 2
		for end < len(runes) && unicode.IsLower(runes[end]) {
			end++
		}
		return string(runes[:end])
	}
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) {
			return string(runes[:i])
		}
	}
	return stem
}
