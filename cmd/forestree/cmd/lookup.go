package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FraknToastr/CityEngine/internal/app"
	"github.com/FraknToastr/CityEngine/internal/domain/resolve"
	"github.com/FraknToastr/CityEngine/internal/ports"
)

var (
	lookupCatalogRoot  string
	lookupCatalogList  string
	lookupRules        string
	lookupStyle        string
	lookupSpeciesStyle string
	lookupHybrid       bool
	lookupInfraRank    string
	lookupInfraName    string
	lookupAccepted     string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <genus> [species]",
	Short: "Resolve a single taxon against the catalog",
	Long:  "Runs one genus/species pair through the full matching tiers and prints the matched stem, tier, and synthesized asset paths.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupCatalogRoot, "catalog-root", "", "asset catalog directory to scan")
	lookupCmd.Flags().StringVar(&lookupCatalogList, "catalog-list", "", "pre-built asset listing file, one path per line")
	lookupCmd.Flags().StringVar(&lookupRules, "rules", "", "YAML rules file: genus overrides, forced unknowns")
	lookupCmd.Flags().StringVar(&lookupStyle, "style", "LowPoly", "style for the FinalAsset path")
	lookupCmd.Flags().StringVar(&lookupSpeciesStyle, "species-style", "LowPoly", "preferred style for the asset_file reference")
	lookupCmd.Flags().BoolVar(&lookupHybrid, "hybrid", false, "treat the species as a hybrid epithet")
	lookupCmd.Flags().StringVar(&lookupInfraRank, "infra-rank", "", "infraspecific rank, e.g. subsp. or var.")
	lookupCmd.Flags().StringVar(&lookupInfraName, "infra-name", "", "infraspecific epithet")
	lookupCmd.Flags().StringVar(&lookupAccepted, "accepted-name", "", "accepted scientific name to try as a candidate")
}

func runLookup(cmd *cobra.Command, args []string) error {
	if lookupCatalogRoot == "" && lookupCatalogList == "" {
		return fmt.Errorf("one of --catalog-root or --catalog-list is required")
	}

	defStyle, ok := ports.StyleFromName(lookupStyle)
	if !ok {
		return fmt.Errorf("unknown style %q", lookupStyle)
	}
	refStyle, ok := ports.StyleFromName(lookupSpeciesStyle)
	if !ok {
		return fmt.Errorf("unknown style %q", lookupSpeciesStyle)
	}

	rec := ports.TaxonRecord{
		Genus:                  args[0],
		InfraspecificRank:      lookupInfraRank,
		InfraspecificName:      lookupInfraName,
		AcceptedScientificName: lookupAccepted,
	}
	if len(args) == 2 {
		rec.Species = args[1]
	}
	if lookupHybrid {
		rec.HybridMarker = "x"
	}

	cat, err := app.BuildCatalog(lookupCatalogRoot, lookupCatalogList)
	if err != nil {
		return err
	}

	var rules *app.RulesFile
	if lookupRules != "" {
		if rules, err = app.LoadRules(lookupRules); err != nil {
			return err
		}
	}

	res := resolve.New(cat, rules.Overrides(), defStyle, refStyle, nil)
	row := res.Resolve(rec)

	fmt.Print(formatLookup(row))
	return nil
}
