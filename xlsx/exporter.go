// Package xlsx serializes result rows to an XLSX workbook.
package xlsx

import (
	"github.com/fwojciec/bodytext"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the sheet holding the exported rows.
const SheetName = "extract"

// Ensure Exporter implements bodytext.Exporter at compile time.
var _ bodytext.Exporter = (*Exporter)(nil)

// Exporter renders rows as an XLSX workbook with a header row followed by
// one row per result, in order.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export serializes the rows and returns the workbook bytes.
func (e *Exporter) Export(rows []bodytext.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	header := make([]any, len(bodytext.ExportColumns))
	for i, col := range bodytext.ExportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := cellValues(row)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cellValues maps a row to typed cells matching bodytext.ExportColumns.
// Failed rows get an empty http_status cell rather than a zero.
func cellValues(row bodytext.Row) []any {
	var status any = row.HTTPStatus
	if row.Failed() {
		status = ""
	}
	return []any{
		row.InputURL,
		row.FinalURL,
		status,
		row.Title,
		row.BodyText,
		row.BodyLen,
		row.Error,
	}
}
