package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FraknToastr/CityEngine/internal/adapters/table"
	"github.com/FraknToastr/CityEngine/internal/domain/resolve"
)

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`fields:
  common_name: "Common Name"
  genus: "GENUS"
genus_stems:
  - genus: Quercus
    stem: QuercusRobur
  - genus: Platanus x
    stem: PlatanusAcerifolia
force_unknown:
  - Vacant site
  - ""
`), 0644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, table.FieldMap{
		CommonName: "Common Name",
		Genus:      "GENUS",
	}, rules.FieldMap())

	ov := rules.Overrides()
	// Genus keys are tokenized, so display spellings with markers or casing
	// all land on the same bucket key.
	assert.Equal(t, []resolve.Override{
		{Genus: "quercus", Stem: "QuercusRobur"},
		{Genus: "platanusx", Stem: "PlatanusAcerifolia"},
	}, ov.GenusStems)
	assert.True(t, ov.ForceUnknown["vacantsite"])
	assert.Len(t, ov.ForceUnknown, 1) // empty entries dropped
}

func TestLoadRules_Missing(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read rules")
}

func TestLoadRules_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields: [not, a, mapping"), 0644))

	_, err := LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse rules")
}

func TestRulesFile_NilReceiver(t *testing.T) {
	var rules *RulesFile
	assert.Equal(t, table.FieldMap{}, rules.FieldMap())
	assert.Equal(t, resolve.Overrides{}, rules.Overrides())
}

func TestConfig_WatchPaths(t *testing.T) {
	cfg := Config{
		TablePath:   "trees.csv",
		OutputPath:  "out.csv",
		CatalogRoot: "catalog",
	}
	assert.Equal(t, []string{"trees.csv", "catalog"}, cfg.WatchPaths())

	cfg.CatalogRoot = ""
	cfg.CatalogList = "assets.txt"
	cfg.RulesPath = "rules.yaml"
	assert.Equal(t, []string{"trees.csv", "assets.txt", "rules.yaml"}, cfg.WatchPaths())
}

func TestConfig_ValidateCollectsAllViolations(t *testing.T) {
	cfg := Config{DefaultStyle: "LowPoly", SpeciesStyle: "LowPoly"}
	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--table is required")
	assert.Contains(t, err.Error(), "--output is required")
	assert.Contains(t, err.Error(), "--catalog-root is required")
}
