package table

import (
	"encoding/csv"
	"io"

	"github.com/FraknToastr/CityEngine/internal/ports"
)

// columns is the output schema, in legacy order: normalized name fields, the
// join key, the catalog-side reference columns, the tier, one baked path per
// style, and the default-style path. Downstream CityEngine rules read these
// headers verbatim.
var columns = []string{
	"common_name", "genus", "species", "Key",
	"asset_file", "Genus", "MatchType",
	"FinalAsset_LowPoly", "FinalAsset_Realistic", "FinalAsset_Schematic", "FinalAsset_Fan",
	"FinalAsset",
}

// Writer serializes resolved rows as CSV, one row per record, header first.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter wraps w. Nothing is written until the first row or Flush, so a
// failed run does not leave a half-claimed output file behind.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write emits one resolved row.
func (w *Writer) Write(row ports.ResolvedRow) error {
	if err := w.ensureHeader(); err != nil {
		return err
	}
	return w.csv.Write([]string{
		row.CommonName, row.Genus, row.Species, row.Key,
		row.AssetFile, row.AssetGenus, string(row.MatchType),
		row.PerStyle[ports.StyleLowPoly],
		row.PerStyle[ports.StyleRealistic],
		row.PerStyle[ports.StyleSchematic],
		row.PerStyle[ports.StyleFan],
		row.FinalAsset,
	})
}

// Flush writes any buffered rows and reports the first underlying write
// error. An empty run still produces the header, matching the legacy tool.
func (w *Writer) Flush() error {
	if err := w.ensureHeader(); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

func (w *Writer) ensureHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	return w.csv.Write(columns)
}
