package ports

// RecordSource streams taxonomy records from a source table in file order.
// The concrete implementation (CSV) lives in internal/adapters/table.
type RecordSource interface {
	// Next returns the next record, or io.EOF once the table is exhausted.
	// Any other error means the source is unreadable and the run must stop.
	Next() (TaxonRecord, error)
}

// RowSink consumes resolved rows in the order they were resolved. Writers
// own column order and quoting; callers only hand over finished rows.
type RowSink interface {
	Write(row ResolvedRow) error
}

// CatalogSource produces the flat list of asset path strings one catalog
// build consumes. Implementations: a directory walker and a listing-file
// reader, both in internal/adapters/assetdir. Order does not matter; the
// catalog sorts before indexing.
type CatalogSource interface {
	Paths() ([]string, error)
}
