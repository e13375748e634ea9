package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FraknToastr/CityEngine/internal/app"
)

var (
	catalogRoot string
	catalogList string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Scan an asset catalog and show what it indexes to",
	Long:  "Builds the catalog indexes without resolving anything: per-style asset counts, distinct stems, genus buckets, and the Unknown stem in use.",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogRoot, "catalog-root", "", "asset catalog directory to scan")
	catalogCmd.Flags().StringVar(&catalogList, "catalog-list", "", "pre-built asset listing file, one path per line")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if catalogRoot == "" && catalogList == "" {
		return fmt.Errorf("one of --catalog-root or --catalog-list is required")
	}

	cat, err := app.BuildCatalog(catalogRoot, catalogList)
	if err != nil {
		return err
	}

	fmt.Print(formatCatalog(cat))
	return nil
}
