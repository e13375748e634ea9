package app

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/FraknToastr/CityEngine/internal/adapters/table"
	"github.com/FraknToastr/CityEngine/internal/domain/resolve"
	"github.com/FraknToastr/CityEngine/internal/domain/taxon"
)

// Config holds the parameters for one crosswalk run. Exactly one catalog
// source must be set: a root directory to scan or a pre-built listing file.
type Config struct {
	TablePath  string `flag:"table" validate:"required"`
	OutputPath string `flag:"output" validate:"required"`

	CatalogRoot string `flag:"catalog-root" validate:"required_without=CatalogList,excluded_with=CatalogList"`
	CatalogList string `flag:"catalog-list"`

	// DefaultStyle fills the FinalAsset column; SpeciesStyle is the preferred
	// style for the asset_file reference on species matches.
	DefaultStyle string `flag:"style" validate:"required,oneof=LowPoly Realistic Schematic Fan"`
	SpeciesStyle string `flag:"species-style" validate:"required,oneof=LowPoly Realistic Schematic Fan"`

	// RulesPath names an optional YAML rules file. Reloaded on every run so
	// watch mode picks up edits.
	RulesPath string `flag:"rules"`
}

// applyDefaults fills unset styles. LowPoly matches the legacy tool's default.
func (c *Config) applyDefaults() {
	if c.DefaultStyle == "" {
		c.DefaultStyle = "LowPoly"
	}
	if c.SpeciesStyle == "" {
		c.SpeciesStyle = "LowPoly"
	}
}

// validate checks the config and reports every violation in one error,
// phrased against the CLI flag names.
func (c *Config) validate() error {
	v := validator.New()

	// Report errors against flag names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return name
		}
		return fld.Name
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("--%s %s", e.Field(), friendlyMessage(e)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "is required when no catalog listing is given"
	case "excluded_with":
		return "cannot be combined with --catalog-list"
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(e.Param(), " ", ", "))
	}
	return fmt.Sprintf("failed %s validation", e.Tag())
}

// WatchPaths returns the run inputs a watch session monitors: the source
// table, the catalog source, and the rules file when configured. The output
// path is deliberately absent — watching it would loop the watcher.
func (c Config) WatchPaths() []string {
	paths := []string{c.TablePath}
	if c.CatalogList != "" {
		paths = append(paths, c.CatalogList)
	} else {
		paths = append(paths, c.CatalogRoot)
	}
	if c.RulesPath != "" {
		paths = append(paths, c.RulesPath)
	}
	return paths
}

// RulesFile mirrors the YAML rules document:
//
//	fields:
//	  genus: "GENUS"
//	  species: "Species Name"
//	genus_stems:
//	  - genus: Quercus
//	    stem: QuercusRubra
//	force_unknown:
//	  - Vacant site
type RulesFile struct {
	Fields struct {
		CommonName string `yaml:"common_name"`
		Genus      string `yaml:"genus"`
		Species    string `yaml:"species"`
	} `yaml:"fields"`
	GenusStems []struct {
		Genus string `yaml:"genus"`
		Stem  string `yaml:"stem"`
	} `yaml:"genus_stems"`
	ForceUnknown []string `yaml:"force_unknown"`
}

// LoadRules reads and parses a YAML rules file.
func LoadRules(path string) (*RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	var rf RulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return &rf, nil
}

// FieldMap converts the fields section into reader column overrides.
// Safe on a nil receiver: no rules means no overrides.
func (rf *RulesFile) FieldMap() table.FieldMap {
	if rf == nil {
		return table.FieldMap{}
	}
	return table.FieldMap{
		CommonName: rf.Fields.CommonName,
		Genus:      rf.Fields.Genus,
		Species:    rf.Fields.Species,
	}
}

// Overrides converts the rules into resolver overrides. Genus keys are
// written as display names in the YAML and tokenized here, so "Quercus"
// and "quercus" configure the same bucket. Safe on a nil receiver.
func (rf *RulesFile) Overrides() resolve.Overrides {
	if rf == nil {
		return resolve.Overrides{}
	}
	ov := resolve.Overrides{}
	for _, rule := range rf.GenusStems {
		if token := taxon.Token(rule.Genus); token != "" && rule.Stem != "" {
			ov.GenusStems = append(ov.GenusStems, resolve.Override{Genus: token, Stem: rule.Stem})
		}
	}
	for _, name := range rf.ForceUnknown {
		if token := taxon.Token(name); token != "" {
			if ov.ForceUnknown == nil {
				ov.ForceUnknown = make(map[string]bool)
			}
			ov.ForceUnknown[token] = true
		}
	}
	return ov
}
