// Package app wires adapters and domain logic into complete crosswalk runs.
// A run is: build the catalog indexes, stream taxonomy records through the
// resolver, write output rows, report tier statistics.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/FraknToastr/CityEngine/internal/adapters/assetdir"
	"github.com/FraknToastr/CityEngine/internal/adapters/table"
	"github.com/FraknToastr/CityEngine/internal/domain/catalog"
	"github.com/FraknToastr/CityEngine/internal/domain/resolve"
	"github.com/FraknToastr/CityEngine/internal/ports"
)

// App runs crosswalks for one validated configuration. Run may be called
// repeatedly; every call re-reads the catalog, table, and rules, so watch
// mode sees edits without rebuilding the App.
type App struct {
	cfg Config
	log *slog.Logger

	defaultStyle ports.Style
	speciesStyle ports.Style
}

// RunResult summarizes one completed run.
type RunResult struct {
	RunID   string
	Rows    int
	Report  resolve.Report
	Stems   int
	Genera  int
	Output  string
	Elapsed time.Duration
}

// New validates the config and returns an App ready to run. A nil logger
// discards log output.
func New(cfg Config, log *slog.Logger) (*App, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Styles are validated as oneof above, so these cannot miss.
	defStyle, _ := ports.StyleFromName(cfg.DefaultStyle)
	refStyle, _ := ports.StyleFromName(cfg.SpeciesStyle)

	return &App{
		cfg:          cfg,
		log:          log,
		defaultStyle: defStyle,
		speciesStyle: refStyle,
	}, nil
}

// Run executes one complete crosswalk: catalog build, record resolution,
// output write, summary. Input order is preserved in the output.
func (a *App) Run() (*RunResult, error) {
	started := time.Now()
	runID := uuid.NewString()
	log := a.log.With("run", runID)

	var rules *RulesFile
	if a.cfg.RulesPath != "" {
		rf, err := LoadRules(a.cfg.RulesPath)
		if err != nil {
			return nil, err
		}
		rules = rf
	}

	cat, err := BuildCatalog(a.cfg.CatalogRoot, a.cfg.CatalogList)
	if err != nil {
		return nil, err
	}
	log.Info("catalog indexed",
		"stems", cat.StemCount(),
		"genera", cat.GenusCount(),
		"unknown_stem", cat.UnknownStem())

	in, err := os.Open(a.cfg.TablePath)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer in.Close()

	src, err := table.NewReader(in, rules.FieldMap(), log)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(a.cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	sink := table.NewWriter(out)

	stats := &resolve.RunStats{}
	res := resolve.New(cat, rules.Overrides(), a.defaultStyle, a.speciesStyle, stats)

	rows, err := Crosswalk(src, res, sink)
	if err != nil {
		return nil, err
	}
	if err := sink.Flush(); err != nil {
		return nil, fmt.Errorf("flush output: %w", err)
	}

	report := stats.Summary()
	if report.EmptyKey > 0 {
		log.Warn("records with empty genus and species resolved Unknown",
			"count", report.EmptyKey)
	}
	log.Info("run complete", "rows", rows, "elapsed", time.Since(started))

	return &RunResult{
		RunID:   runID,
		Rows:    rows,
		Report:  report,
		Stems:   cat.StemCount(),
		Genera:  cat.GenusCount(),
		Output:  a.cfg.OutputPath,
		Elapsed: time.Since(started),
	}, nil
}

// Crosswalk streams every record from src through the resolver into sink and
// returns the number of rows written. Resolution itself never fails; an error
// here is an I/O error from the source or sink.
func Crosswalk(src ports.RecordSource, res *resolve.Resolver, sink ports.RowSink) (int, error) {
	rows := 0
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("read record %d: %w", rows+1, err)
		}
		if err := sink.Write(res.Resolve(rec)); err != nil {
			return rows, fmt.Errorf("write row %d: %w", rows+1, err)
		}
		rows++
	}
}

// BuildCatalog scans the chosen catalog source and builds the lookup indexes.
// A listing file takes precedence over a directory root; run configs are
// validated to carry exactly one.
func BuildCatalog(root, list string) (*catalog.Catalog, error) {
	var src ports.CatalogSource
	if list != "" {
		src = assetdir.ListSource{Path: list}
	} else {
		src = assetdir.DirSource{Root: root}
	}
	paths, err := src.Paths()
	if err != nil {
		return nil, err
	}
	return catalog.Build(paths)
}
