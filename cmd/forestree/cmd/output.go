package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/FraknToastr/CityEngine/internal/app"
	"github.com/FraknToastr/CityEngine/internal/domain/catalog"
	"github.com/FraknToastr/CityEngine/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// tierColor maps a match tier to its display color: the greener the better.
func tierColor(tier ports.MatchType) string {
	switch tier {
	case ports.MatchSpecies:
		return colorGreen
	case ports.MatchGenus:
		return colorYellow
	default:
		return colorGray
	}
}

// formatRunResult formats a completed run for terminal display.
//
//	⚡ 1037 rows → Forestree_WithAssets.csv │ 412ms
//	  Species match     612   59.0%
//	  Genus fallback    310   29.9%
//	  Unknown           115   11.1%
//	  Total            1037
func formatRunResult(r *app.RunResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d rows%s → %s%s%s │ %s\n",
		colorBold, r.Rows, colorReset,
		colorCyan, r.Output, colorReset,
		r.Elapsed.Round(time.Millisecond)))

	for _, tc := range r.Report.Tiers {
		sb.WriteString(fmt.Sprintf("  %s%-14s%s %7d  %5.1f%%\n",
			tierColor(tc.Tier), tc.Tier, colorReset, tc.Count, tc.Percent))
	}
	sb.WriteString(fmt.Sprintf("  %-14s %7d\n", "Total", r.Report.Total))

	if r.Report.EmptyKey > 0 {
		sb.WriteString(fmt.Sprintf("  %s%d records had neither genus nor species%s\n",
			colorYellow, r.Report.EmptyKey, colorReset))
	}
	sb.WriteString(fmt.Sprintf("  %srun %s%s\n", colorGray, r.RunID, colorReset))
	return sb.String()
}

// formatCatalog formats catalog inspection results for terminal display.
func formatCatalog(cat *catalog.Catalog) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d stems%s │ %d genus buckets\n",
		colorBold, cat.StemCount(), colorReset, cat.GenusCount()))

	for _, style := range ports.StylePriority {
		sb.WriteString(fmt.Sprintf("  %s%-10s%s %6d assets\n",
			colorCyan, style, colorReset, cat.StyleCount(style)))
	}

	origin := "built-in default"
	if cat.UnknownFromCatalog() {
		origin = "from catalog"
	}
	sb.WriteString(fmt.Sprintf("  Unknown stem: %s (%s)\n", cat.UnknownStem(), origin))
	return sb.String()
}

// formatLookup formats a single resolved record for terminal display.
func formatLookup(row ports.ResolvedRow) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %s%s%s → %s\n",
		colorBold, tierColor(row.MatchType), row.MatchType, colorReset, row.Stem))

	if row.Key != "" {
		sb.WriteString(fmt.Sprintf("  Key:        %s\n", row.Key))
	}
	if row.AssetFile != "" {
		sb.WriteString(fmt.Sprintf("  asset_file: %s%s%s\n", colorCyan, row.AssetFile, colorReset))
	}
	for _, style := range ports.StylePriority {
		sb.WriteString(fmt.Sprintf("  %-11s %s\n", string(style)+":", row.PerStyle[style]))
	}
	sb.WriteString(fmt.Sprintf("  FinalAsset: %s%s%s\n", colorGreen, row.FinalAsset, colorReset))
	return sb.String()
}
