// Package table reads taxonomy records from CSV inventory exports and writes
// resolved crosswalk rows back out. Column mapping is header-driven: the
// common name, genus and species columns can be renamed per run, the rest are
// matched by their canonical names when the table carries them.
package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/FraknToastr/CityEngine/internal/ports"
)

// Canonical source column names. Matching is case-insensitive.
const (
	colCommonName        = "common_name"
	colGenus             = "genus"
	colSpecies           = "species"
	colAcceptedSciName   = "accepted_scientific_name"
	colAcceptedGenus     = "accepted_genus"
	colAcceptedSpecies   = "accepted_species"
	colInfraspecificRank = "infraspecific_rank"
	colInfraspecificName = "infraspecific_name"
	colHybridMarker      = "hybrid_marker"
	colHybridParent1     = "hybrid_parent_1"
	colHybridParent2     = "hybrid_parent_2"
)

// utf8BOM prefixes many Excel CSV exports and would otherwise glue itself to
// the first header name.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FieldMap renames the three caller-configurable source columns. Empty
// values keep the canonical names. A name not present in the table's header
// is logged and ignored, falling back to the canonical column.
type FieldMap struct {
	CommonName string
	Genus      string
	Species    string
}

// Reader streams TaxonRecords from one CSV table in row order.
type Reader struct {
	csv  *csv.Reader
	cols map[string]int
}

// NewReader consumes r fully, fixes up the encoding, and binds columns from
// the header row. Inventory exports from legacy GIS tooling are frequently
// Windows-1252; anything that is not valid UTF-8 is transcoded so genus names
// like "Kölreuteria" survive tokenization instead of losing bytes.
func NewReader(r io.Reader, fields FieldMap, log *slog.Logger) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		data, err = charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("transcode table: %w", err)
		}
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1 // legacy exports have ragged rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read table header: %w", err)
	}

	byName := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, taken := byName[key]; !taken {
			byName[key] = i
		}
	}

	rd := &Reader{csv: cr, cols: make(map[string]int)}
	for _, canonical := range []string{
		colCommonName, colGenus, colSpecies,
		colAcceptedSciName, colAcceptedGenus, colAcceptedSpecies,
		colInfraspecificRank, colInfraspecificName,
		colHybridMarker, colHybridParent1, colHybridParent2,
	} {
		if i, ok := byName[canonical]; ok {
			rd.cols[canonical] = i
		}
	}
	rd.applyOverride(byName, colCommonName, fields.CommonName, log)
	rd.applyOverride(byName, colGenus, fields.Genus, log)
	rd.applyOverride(byName, colSpecies, fields.Species, log)

	return rd, nil
}

// applyOverride rebinds a canonical field to a caller-named column. Overrides
// naming absent columns are dropped with a warning, never errors; the run
// continues on the canonical binding.
func (r *Reader) applyOverride(byName map[string]int, canonical, override string, log *slog.Logger) {
	override = strings.TrimSpace(override)
	if override == "" {
		return
	}
	if i, ok := byName[strings.ToLower(override)]; ok {
		r.cols[canonical] = i
		return
	}
	if log != nil {
		log.Warn("field mapping ignored, column not in source table",
			"field", canonical, "column", override)
	}
}

// Next returns the next record, or io.EOF once the table is exhausted.
// Absent and out-of-range columns read as empty strings.
func (r *Reader) Next() (ports.TaxonRecord, error) {
	row, err := r.csv.Read()
	if err != nil {
		return ports.TaxonRecord{}, err
	}
	return ports.TaxonRecord{
		CommonName:             r.field(row, colCommonName),
		Genus:                  r.field(row, colGenus),
		Species:                r.field(row, colSpecies),
		AcceptedScientificName: r.field(row, colAcceptedSciName),
		AcceptedGenus:          r.field(row, colAcceptedGenus),
		AcceptedSpecies:        r.field(row, colAcceptedSpecies),
		InfraspecificRank:      r.field(row, colInfraspecificRank),
		InfraspecificName:      r.field(row, colInfraspecificName),
		HybridMarker:           r.field(row, colHybridMarker),
		HybridParent1:          r.field(row, colHybridParent1),
		HybridParent2:          r.field(row, colHybridParent2),
	}, nil
}

func (r *Reader) field(row []string, canonical string) string {
	i, ok := r.cols[canonical]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
