// Package catalog turns a flat list of asset paths into the read-only lookup
// indexes one run resolves against: an exact index from name token to stem, a
// genus index from genus token to candidate stems, and per-style availability.
//
// Build order is deterministic. Stems are indexed in lexicographic order, so
// token collisions and genus bucket order never depend on how the paths were
// scanned.
package catalog

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/FraknToastr/CityEngine/internal/domain/taxon"
	"github.com/FraknToastr/CityEngine/internal/ports"
)

// ErrNoAssets is returned by Build when no usable asset was found. A run
// cannot proceed without an exact index; every record would resolve Unknown
// and the output would be silently worthless.
var ErrNoAssets = errors.New("catalog: no usable assets found")

// assetExt is the only file extension admitted into the catalog.
const assetExt = ".glb"

// defaultUnknownStem names the placeholder asset when the catalog itself
// carries no stem tokenizing to "unknown". The synthesized paths then point
// at Unknown.glb whether or not it exists on disk, matching the legacy
// dataset convention.
const defaultUnknownStem = "Unknown"

// Catalog holds the indexes built from one scan. Read-only after Build;
// concurrent lookups are safe.
type Catalog struct {
	styles      map[string]map[ports.Style]bool
	exact       map[string]string
	genus       map[string][]string
	styleCounts map[ports.Style]int
	unknownStem string
	fromCatalog bool
}

// Build parses asset path lines into a Catalog. Lines without a .glb
// filename or without a recognized style directory are skipped, not errors;
// real asset trees carry textures, thumbnails and license files alongside
// the models. Returns ErrNoAssets when nothing survives the filter.
func Build(lines []string) (*Catalog, error) {
	c := &Catalog{
		styles:      make(map[string]map[ports.Style]bool),
		exact:       make(map[string]string),
		genus:       make(map[string][]string),
		styleCounts: make(map[ports.Style]int),
	}

	for _, line := range lines {
		stem, style, ok := parseAssetPath(line)
		if !ok {
			continue
		}
		if c.styles[stem] == nil {
			c.styles[stem] = make(map[ports.Style]bool)
		}
		c.styles[stem][style] = true
		c.styleCounts[style]++
	}

	for _, stem := range c.Stems() {
		token := taxon.Token(stem)
		if token == "" {
			continue
		}
		// First stem wins on token collisions. Stems() is sorted, so the
		// winner is stable across runs.
		if _, taken := c.exact[token]; !taken {
			c.exact[token] = stem
		}
		if genusToken := taxon.Token(taxon.StemGenus(stem)); genusToken != "" {
			c.genus[genusToken] = append(c.genus[genusToken], stem)
		}
	}

	if len(c.exact) == 0 {
		return nil, ErrNoAssets
	}

	c.unknownStem = defaultUnknownStem
	if stem, ok := c.exact["unknown"]; ok {
		c.unknownStem = stem
		c.fromCatalog = true
	}

	return c, nil
}

// parseAssetPath splits one path line into (stem, style). Both / and \ are
// accepted as separators since listing files frequently come from Windows
// exports. The style is the last recognized style directory before the
// filename; the stem is the filename without its extension, casing intact.
func parseAssetPath(line string) (string, ports.Style, bool) {
	segments := strings.FieldsFunc(line, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(segments) == 0 {
		return "", "", false
	}

	filename := segments[len(segments)-1]
	if !strings.EqualFold(filepath.Ext(filename), assetExt) {
		return "", "", false
	}
	stem := filename[:len(filename)-len(assetExt)]
	if stem == "" {
		return "", "", false
	}

	for i := len(segments) - 2; i >= 0; i-- {
		if style, ok := ports.StyleFromName(segments[i]); ok {
			return stem, style, true
		}
	}
	return "", "", false
}

// LookupExact returns the stem indexed under a name token.
func (c *Catalog) LookupExact(token string) (string, bool) {
	stem, ok := c.exact[token]
	return stem, ok
}

// GenusBucket returns the stems sharing a genus token, in lexicographic
// order. The returned slice is shared; callers must not mutate it.
func (c *Catalog) GenusBucket(token string) []string {
	return c.genus[token]
}

// HasStyle reports whether a stem was seen in the given style.
func (c *Catalog) HasStyle(stem string, style ports.Style) bool {
	return c.styles[stem][style]
}

// StemStyles returns the styles a stem was seen in, in priority order.
func (c *Catalog) StemStyles(stem string) []ports.Style {
	set := c.styles[stem]
	if len(set) == 0 {
		return nil
	}
	styles := make([]ports.Style, 0, len(set))
	for _, s := range ports.StylePriority {
		if set[s] {
			styles = append(styles, s)
		}
	}
	return styles
}

// Stems returns every distinct stem in lexicographic order.
func (c *Catalog) Stems() []string {
	stems := make([]string, 0, len(c.styles))
	for stem := range c.styles {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	return stems
}

// StemCount returns the number of distinct stems.
func (c *Catalog) StemCount() int { return len(c.styles) }

// GenusCount returns the number of genus fallback buckets.
func (c *Catalog) GenusCount() int { return len(c.genus) }

// StyleCount returns how many path lines were accepted for a style.
func (c *Catalog) StyleCount(style ports.Style) int { return c.styleCounts[style] }

// UnknownStem returns the stem unmatched records resolve to.
func (c *Catalog) UnknownStem() string { return c.unknownStem }

// UnknownFromCatalog reports whether the Unknown stem is backed by a scanned
// asset rather than the built-in default.
func (c *Catalog) UnknownFromCatalog() bool { return c.fromCatalog }
