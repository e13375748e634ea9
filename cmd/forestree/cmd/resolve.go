package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FraknToastr/CityEngine/internal/app"
)

// Run flags, shared by resolve and watch.
var (
	tableFlag        string
	outputFlag       string
	catalogRootFlag  string
	catalogListFlag  string
	styleFlag        string
	speciesStyleFlag string
	rulesFlag        string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Crosswalk an inventory table against an asset catalog",
	Long:  "Reads a taxonomy table, matches every record against the asset catalog, and writes one output row per record with baked-in per-style asset paths.",
	RunE:  runResolve,
}

func init() {
	addRunFlags(resolveCmd)
}

// addRunFlags registers the shared run flag set on a command.
func addRunFlags(c *cobra.Command) {
	c.Flags().StringVarP(&tableFlag, "table", "t", "", "source inventory CSV")
	c.Flags().StringVarP(&outputFlag, "output", "o", "", "output CSV path")
	c.Flags().StringVar(&catalogRootFlag, "catalog-root", "", "asset catalog directory to scan")
	c.Flags().StringVar(&catalogListFlag, "catalog-list", "", "pre-built asset listing file, one path per line")
	c.Flags().StringVar(&styleFlag, "style", "LowPoly", "style for the FinalAsset column")
	c.Flags().StringVar(&speciesStyleFlag, "species-style", "LowPoly", "preferred style for the asset_file reference column")
	c.Flags().StringVar(&rulesFlag, "rules", "", "YAML rules file: field mapping, genus overrides, forced unknowns")
	c.MarkFlagRequired("table")
	c.MarkFlagRequired("output")
}

// runConfig assembles the app config from the shared flags.
func runConfig() app.Config {
	return app.Config{
		TablePath:    tableFlag,
		OutputPath:   outputFlag,
		CatalogRoot:  catalogRootFlag,
		CatalogList:  catalogListFlag,
		DefaultStyle: styleFlag,
		SpeciesStyle: speciesStyleFlag,
		RulesPath:    rulesFlag,
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := app.New(runConfig(), newLogger())
	if err != nil {
		return err
	}

	result, err := a.Run()
	if err != nil {
		return err
	}

	fmt.Print(formatRunResult(result))
	return nil
}
