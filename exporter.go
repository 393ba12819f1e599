package bodytext

// Exporter serializes rows to a downloadable tabular artifact.
type Exporter interface {
	// Export renders the rows, in order, preceded by a header row with
	// ExportColumns. The byte-level format is implementation-defined.
	Export(rows []Row) ([]byte, error)
}
