// Package resolve matches taxonomy records against a built catalog using
// three strict tiers: exact species match, genus fallback, Unknown. A record
// is tested against each tier in order and stops at the first hit, so the
// tiers partition any input set and the summary counts always add up.
package resolve

import (
	"fmt"

	"github.com/FraknToastr/CityEngine/internal/domain/catalog"
	"github.com/FraknToastr/CityEngine/internal/domain/taxon"
	"github.com/FraknToastr/CityEngine/internal/ports"
)

// Output path conventions, reproduced byte for byte from the legacy dataset.
// CityEngine rules concatenate these strings; changing them breaks scene
// imports.
const (
	treeAssetPathFmt = "assets/Trees/%s/%s.glb"
	webstylePathFmt  = "ESRI.lib/assets/Webstyles/Vegetation/%s/%s.glb"
)

// Resolver resolves records against an immutable catalog. Not safe for
// concurrent use: RunStats mutation is unsynchronized and rows are expected
// in input order anyway.
type Resolver struct {
	catalog      *catalog.Catalog
	overrides    Overrides
	defaultStyle ports.Style
	refStyle     ports.Style
	stats        *RunStats
}

// New builds a Resolver. defaultStyle selects which synthesized path lands
// in FinalAsset; refStyle is the style the asset_file reference column asks
// for on species matches. stats receives exactly one tier increment per
// Resolve call; pass a fresh RunStats per run.
func New(cat *catalog.Catalog, ov Overrides, defaultStyle, refStyle ports.Style, stats *RunStats) *Resolver {
	if stats == nil {
		stats = &RunStats{}
	}
	return &Resolver{
		catalog:      cat,
		overrides:    ov,
		defaultStyle: defaultStyle,
		refStyle:     refStyle,
		stats:        stats,
	}
}

// Stats returns the running counters.
func (r *Resolver) Stats() *RunStats { return r.stats }

// Resolve maps one record to its output row. It never fails: malformed input
// degrades to empty tokens and lands in the Unknown tier, keeping output row
// count equal to input record count.
func (r *Resolver) Resolve(rec ports.TaxonRecord) ports.ResolvedRow {
	genus := taxon.DisplayName(rec.Genus)
	species := taxon.DisplayName(rec.Species)

	row := ports.ResolvedRow{
		CommonName: taxon.DisplayName(rec.CommonName),
		Genus:      genus,
		Species:    species,
		Key:        genus + species,
	}
	if genus == "" && species == "" {
		r.stats.EmptyKey++
	}

	stem, tier := r.match(rec)
	row.MatchType = tier
	row.Stem = stem

	// The reference columns are catalog-side data and only exist when the
	// catalog actually recognized the taxon.
	if tier == ports.MatchSpecies {
		row.AssetFile = fmt.Sprintf(webstylePathFmt, r.pickStyle(stem), stem)
		row.AssetGenus = taxon.StemGenus(stem)
	}

	row.PerStyle = make(map[ports.Style]string, len(ports.StylePriority))
	for _, style := range ports.StylePriority {
		row.PerStyle[style] = fmt.Sprintf(treeAssetPathFmt, style, stem)
	}
	row.FinalAsset = row.PerStyle[r.defaultStyle]

	r.stats.record(tier)
	return row
}

// match walks the tiers in order and stops at the first hit.
func (r *Resolver) match(rec ports.TaxonRecord) (string, ports.MatchType) {
	for _, token := range taxon.CandidateKeys(rec) {
		if stem, ok := r.catalog.LookupExact(token); ok {
			return stem, ports.MatchSpecies
		}
	}

	if genusToken := taxon.Token(rec.Genus); genusToken != "" {
		if bucket := r.catalog.GenusBucket(genusToken); len(bucket) > 0 {
			return r.fallbackStem(genusToken, bucket), ports.MatchGenus
		}
	}

	return r.catalog.UnknownStem(), ports.MatchUnknown
}

// fallbackStem selects the representative stem for a genus bucket: a forced
// genus resolves to the Unknown stem, a matching override wins next, and the
// first bucket entry covers the rest.
func (r *Resolver) fallbackStem(genusToken string, bucket []string) string {
	if r.overrides.ForceUnknown[genusToken] {
		return r.catalog.UnknownStem()
	}
	if stem, ok := r.overrides.stemFor(genusToken, bucket); ok {
		return stem
	}
	return bucket[0]
}

// pickStyle chooses the style named in the asset_file reference column: the
// requested reference style when the stem ships it, else the first style the
// stem does ship in priority order, else the request unchanged. The column
// is advisory and may point at a variant that does not exist.
func (r *Resolver) pickStyle(stem string) ports.Style {
	if r.catalog.HasStyle(stem, r.refStyle) {
		return r.refStyle
	}
	for _, style := range ports.StylePriority {
		if r.catalog.HasStyle(stem, style) {
			return style
		}
	}
	return r.refStyle
}
