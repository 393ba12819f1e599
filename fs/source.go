// Package fs loads URL lists from local files. Plain text and CSV files are
// read with the standard library; XLSX workbooks via excelize.
package fs

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/bodytext"
	"github.com/xuri/excelize/v2"
)

// Ensure Source implements bodytext.URLSource at compile time.
var _ bodytext.URLSource = (*Source)(nil)

// urlColumns are the recognized URL column headers, in priority order.
var urlColumns = []string{"url", "URL", "adres", "Adres", "link", "Link"}

// Source reads URL lists from TXT, CSV or XLSX files.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Load reads URLs from the file at path, dispatching on the file extension.
// Unsupported extensions and unreadable files return an EINVALID error
// before any network activity starts.
func (s *Source) Load(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return loadText(path)
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, bodytext.Errorf(bodytext.EINVALID, "unsupported file type %q: expected .txt, .csv or .xlsx", filepath.Ext(path))
	}
}

// loadText returns the non-blank trimmed lines of a plain text file.
func loadText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EINVALID, "cannot read %s: %v", path, err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls, nil
}

// loadCSV picks the URL column of a CSV file by header name, falling back to
// the first column.
func loadCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EINVALID, "cannot read %s: %v", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EINVALID, "cannot parse %s: %v", path, err)
	}

	return columnValues(records), nil
}

// loadXLSX picks the URL column of the first sheet of an XLSX workbook by
// header name, falling back to the first column.
func loadXLSX(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EINVALID, "cannot read %s: %v", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EINVALID, "cannot parse %s: %v", path, err)
	}

	return columnValues(rows), nil
}

// columnValues extracts the URL column from header-prefixed tabular records.
func columnValues(records [][]string) []string {
	if len(records) == 0 {
		return nil
	}

	col := pickColumn(records[0])

	var urls []string
	for _, record := range records[1:] {
		if col >= len(record) {
			continue
		}
		if v := strings.TrimSpace(record[col]); v != "" {
			urls = append(urls, v)
		}
	}
	return urls
}

// pickColumn returns the index of the first header matching urlColumns in
// priority order, or 0 when none matches.
func pickColumn(header []string) int {
	for _, name := range urlColumns {
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
	}
	return 0
}
