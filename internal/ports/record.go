// Package ports defines the types and interfaces (contracts) shared between
// the domain engine and the adapters. Domain logic depends only on these,
// never on concrete implementations.
package ports

// MatchType is the specificity tier a record resolved at. The string values
// are the legacy dataset's MatchType column values and must not change, or
// downstream CityEngine imports built on that column break.
type MatchType string

const (
	MatchSpecies MatchType = "Species match"
	MatchGenus   MatchType = "Genus fallback"
	MatchUnknown MatchType = "Unknown"
)

// MatchTiers lists the tiers in resolution order: exact species match first,
// genus fallback second, Unknown last. Summaries render in this order.
var MatchTiers = [3]MatchType{MatchSpecies, MatchGenus, MatchUnknown}

// TaxonRecord is one inventory row as read from the source table. Absent
// columns are empty strings; no field is required. Only CommonName, Genus and
// Species come from configurable columns, the rest are matched by their
// canonical column names when the source table has them.
type TaxonRecord struct {
	CommonName string
	Genus      string
	Species    string

	// Accepted nomenclature, either as one free-text field or pre-split.
	AcceptedScientificName string
	AcceptedGenus          string
	AcceptedSpecies        string

	// Infraspecific epithet, e.g. rank "subsp." name "niphophila".
	InfraspecificRank string
	InfraspecificName string

	// Hybrid flag plus the parent taxa when the source records them.
	HybridMarker  string
	HybridParent1 string
	HybridParent2 string
}

// ResolvedRow is the output row for one input record: normalized name fields,
// the legacy join key, the matched stem and one synthesized asset path per
// style. Field values are final; writers only serialize.
type ResolvedRow struct {
	CommonName string
	Genus      string
	Species    string
	Key        string

	MatchType MatchType
	Stem      string

	// AssetFile and AssetGenus carry the catalog-side reference columns of
	// the legacy crosswalk. Both stay empty below an exact species match.
	AssetFile  string
	AssetGenus string

	// PerStyle always holds all four styles, whether or not the catalog
	// backs them. FinalAsset is PerStyle[default style].
	PerStyle   map[Style]string
	FinalAsset string
}
