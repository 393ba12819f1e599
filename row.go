package bodytext

import (
	"strconv"
	"time"
)

// ExportColumns are the tabular column names, in export order.
var ExportColumns = []string{
	"input_url",
	"final_url",
	"http_status",
	"title",
	"body_text",
	"body_len_chars",
	"error",
}

// Row is the per-URL output record. Exactly one Row exists per input URL,
// appended in input order and never mutated after creation.
type Row struct {
	InputURL   string `json:"inputUrl"`
	FinalURL   string `json:"finalUrl"`
	HTTPStatus int    `json:"httpStatus"`
	Title      string `json:"title"`
	BodyText   string `json:"bodyText"`
	BodyLen    int    `json:"bodyLenChars"`
	Error      string `json:"error"`
}

// Failed reports whether the row records a per-item failure. A failed row
// holds zero values in every other data field.
func (r Row) Failed() bool {
	return r.Error != ""
}

// Strings renders the row as export cell values matching ExportColumns.
// Failed rows export an empty http_status rather than a zero.
func (r Row) Strings() []string {
	status := ""
	if !r.Failed() {
		status = strconv.Itoa(r.HTTPStatus)
	}
	return []string{
		r.InputURL,
		r.FinalURL,
		status,
		r.Title,
		r.BodyText,
		strconv.Itoa(r.BodyLen),
		r.Error,
	}
}

// Run is a completed batch: one Row per input URL, in input order.
// Runs are only persisted after the whole batch has finished.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Rows      []Row     `json:"rows"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if len(r.Rows) == 0 {
		return Errorf(EINVALID, "run must contain at least one row")
	}
	for i, row := range r.Rows {
		if row.InputURL == "" {
			return Errorf(EINVALID, "row %d: input URL required", i)
		}
	}
	return nil
}

// Progress reports batch progress after each processed URL.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as URLs are processed.
type ProgressFunc func(Progress)
