package taxon

import (
	"strings"

	"github.com/FraknToastr/CityEngine/internal/ports"
)

// CandidateKeys expands a taxonomy record into the ordered, deduplicated
// token list the resolver tries against the exact index. Order is match
// priority: the base binomial first, then the infraspecific form, the
// accepted scientific name, the two hybrid spellings, and finally the hybrid
// parent pair. Empty fragments contribute nothing; a fully blank record
// yields an empty list.
func CandidateKeys(rec ports.TaxonRecord) []string {
	keys := newKeyList()

	genus := CollapseSpaces(rec.Genus)
	species := CollapseSpaces(rec.Species)

	// 1. Base binomial, built from the display forms so the token matches
	// the legacy Key column exactly.
	if genus != "" || species != "" {
		keys.add(Token(DisplayName(genus) + DisplayName(species)))
	}

	// 2. Infraspecific taxon: genus species [rank] name. The rank is
	// optional filler ("subsp.", "var."), the name is what discriminates.
	if species != "" && CollapseSpaces(rec.InfraspecificName) != "" {
		parts := []string{genus, species}
		if CollapseSpaces(rec.InfraspecificRank) != "" {
			parts = append(parts, rec.InfraspecificRank)
		}
		parts = append(parts, rec.InfraspecificName)
		keys.add(Token(strings.Join(parts, " ")))
	}

	// 3. Accepted nomenclature, when the source tracks synonyms.
	if sciGenus, sciSpecies := acceptedName(rec); sciGenus != "" || sciSpecies != "" {
		keys.add(Token(sciGenus + " " + sciSpecies))
	}

	// 4. Hybrid epithet, with and without the x marker. Catalogs are
	// inconsistent about which spelling a hybrid stem uses.
	if species != "" && CollapseSpaces(rec.HybridMarker) != "" {
		epithet := StripHybridPrefix(species)
		keys.add(Token(genus + " x " + epithet))
		keys.add(Token(genus + " " + epithet))
	}

	// 5. Parent pair, only when both parents are known.
	p1 := Epithet(rec.HybridParent1, genus)
	p2 := Epithet(rec.HybridParent2, genus)
	if p1 != "" && p2 != "" {
		keys.add(Token(genus + " " + p1 + " x " + p2))
	}

	return keys.tokens
}

// acceptedName resolves a record's accepted nomenclature to a (genus,
// species) pair. The free-text field wins when present and splits on its
// first space; otherwise the pre-split fields are used, with the record's
// own genus standing in when the accepted genus is blank.
func acceptedName(rec ports.TaxonRecord) (string, string) {
	if name := CollapseSpaces(rec.AcceptedScientificName); name != "" {
		sciGenus, sciSpecies, _ := strings.Cut(name, " ")
		return sciGenus, sciSpecies
	}

	sciGenus := CollapseSpaces(rec.AcceptedGenus)
	sciSpecies := CollapseSpaces(rec.AcceptedSpecies)
	if sciSpecies == "" {
		return sciGenus, ""
	}
	if sciGenus == "" {
		sciGenus = CollapseSpaces(rec.Genus)
	}
	return sciGenus, sciSpecies
}

// keyList accumulates candidate tokens, skipping empties and duplicates
// while preserving first-occurrence order. Order is load-bearing: the
// resolver stops at the first token the catalog knows.
type keyList struct {
	tokens []string
	seen   map[string]bool
}

func newKeyList() *keyList {
	return &keyList{seen: make(map[string]bool)}
}

func (k *keyList) add(token string) {
	if token == "" || k.seen[token] {
		return
	}
	k.seen[token] = true
	k.tokens = append(k.tokens, token)
}
