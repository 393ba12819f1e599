package bodytext

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., an ExtractResult's ContentHTML)
	// into its Markdown representation.
	Convert(html string) (string, error)
}
