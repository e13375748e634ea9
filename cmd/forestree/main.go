// forestree bakes CityEngine vegetation asset paths into tree inventory
// tables. Single binary: index the asset catalog, match taxonomy records
// against it, write the enriched table.
package main

import (
	"os"

	"github.com/FraknToastr/CityEngine/cmd/forestree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
