package ports

import "strings"

// Style is one of the four parallel asset variants a stem may ship in. The
// values double as directory names in both the catalog tree and the
// synthesized output paths, so casing matters.
type Style string

const (
	StyleLowPoly   Style = "LowPoly"
	StyleRealistic Style = "Realistic"
	StyleSchematic Style = "Schematic"
	StyleFan       Style = "Fan"
)

// StylePriority is the fixed order walked whenever one style must stand in
// for another, e.g. when a matched stem lacks the requested reference style.
var StylePriority = [4]Style{StyleLowPoly, StyleRealistic, StyleSchematic, StyleFan}

// StyleFromName maps a directory or flag name to its Style, case-insensitively.
func StyleFromName(name string) (Style, bool) {
	for _, s := range StylePriority {
		if strings.EqualFold(name, string(s)) {
			return s, true
		}
	}
	return "", false
}
