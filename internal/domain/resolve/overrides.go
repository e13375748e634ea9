package resolve

// Override pins a genus token to a preferred fallback stem. Curators use
// these when the lexicographic default picks a poor representative, e.g.
// steering Quercus to QuercusRubra instead of the first stem in the bucket.
type Override struct {
	Genus string
	Stem  string
}

// Overrides steers genus fallback selection. The zero value applies no
// overrides. All keys are name tokens, not display strings; the config
// loader tokenizes before handing them over.
type Overrides struct {
	// GenusStems is walked in order. The first rule whose genus matches and
	// whose stem actually sits in the bucket wins; rules pointing at stems
	// the catalog no longer carries are skipped, never errors.
	GenusStems []Override

	// ForceUnknown lists genus tokens that resolve straight to the Unknown
	// stem even when their bucket has candidates. Used for placeholder rows
	// like "Vacant site" whose genus column accidentally matches a real
	// genus.
	ForceUnknown map[string]bool
}

// stemFor returns the override stem for a genus token, if a rule applies and
// its stem is present in the bucket.
func (o Overrides) stemFor(genusToken string, bucket []string) (string, bool) {
	for _, rule := range o.GenusStems {
		if rule.Genus != genusToken {
			continue
		}
		for _, stem := range bucket {
			if stem == rule.Stem {
				return rule.Stem, true
			}
		}
	}
	return "", false
}
