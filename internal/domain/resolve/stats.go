package resolve

import (
	"fmt"
	"strings"

	"github.com/FraknToastr/CityEngine/internal/ports"
)

// RunStats accumulates tier counts while a run resolves records. One Resolve
// call increments exactly one tier counter plus Total, so the tier counters
// always sum to Total. Single writer; create one per run.
type RunStats struct {
	SpeciesMatch  int
	GenusFallback int
	Unknown       int
	Total         int

	// EmptyKey counts records whose genus and species were both blank.
	// Tracked separately from the tiers and reported once at end of run
	// instead of spamming a warning per row.
	EmptyKey int
}

// record bumps the counter for one resolved tier.
func (s *RunStats) record(tier ports.MatchType) {
	switch tier {
	case ports.MatchSpecies:
		s.SpeciesMatch++
	case ports.MatchGenus:
		s.GenusFallback++
	case ports.MatchUnknown:
		s.Unknown++
	}
	s.Total++
}

// count returns the counter for a tier.
func (s *RunStats) count(tier ports.MatchType) int {
	switch tier {
	case ports.MatchSpecies:
		return s.SpeciesMatch
	case ports.MatchGenus:
		return s.GenusFallback
	case ports.MatchUnknown:
		return s.Unknown
	}
	return 0
}

// TierCount is one line of the finalized summary.
type TierCount struct {
	Tier    ports.MatchType
	Count   int
	Percent float64
}

// Report is the finalized run summary: every tier in fixed resolution order,
// each with its share of the total. Built once by Summary, not mutated after.
type Report struct {
	Tiers    []TierCount
	Total    int
	EmptyKey int
}

// Summary finalizes the counters into a Report. Percentages are computed as
// 100 * count / total and come out 0 for an empty run rather than NaN.
func (s *RunStats) Summary() Report {
	r := Report{Total: s.Total, EmptyKey: s.EmptyKey}
	for _, tier := range ports.MatchTiers {
		tc := TierCount{Tier: tier, Count: s.count(tier)}
		if s.Total > 0 {
			tc.Percent = 100 * float64(tc.Count) / float64(s.Total)
		}
		r.Tiers = append(r.Tiers, tc)
	}
	return r
}

// String renders the report as a plain text block, one tier per line plus
// the grand total. Colored rendering lives in the CLI layer.
func (r Report) String() string {
	var sb strings.Builder
	for _, tc := range r.Tiers {
		fmt.Fprintf(&sb, "%-14s %7d  %5.1f%%\n", tc.Tier, tc.Count, tc.Percent)
	}
	fmt.Fprintf(&sb, "%-14s %7d\n", "Total", r.Total)
	return sb.String()
}
