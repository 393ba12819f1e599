package bodytext

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the text of the document's <title> element with internal
	// whitespace collapsed, or empty when absent.
	Title string

	// Text is the normalized, boilerplate-stripped body text. It is always
	// defined: pages without a <body> degrade to whole-document text.
	Text string

	// ContentHTML is the pruned body markup after boilerplate removal.
	// It feeds the optional markdown Converter and may be empty when the
	// extractor had to fall back to plain text.
	ContentHTML string
}

// Extractor extracts readable text from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns title and body text.
	// The heuristic implementation never fails; alternative strategies may
	// return an error, which callers record at the per-item boundary.
	Extract(html string) (*ExtractResult, error)
}
