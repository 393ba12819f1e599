// Package trafilatura provides an alternative bodytext.Extractor built on
// go-trafilatura's readability heuristics. Unlike the goquery extractor it
// can fail on pages it cannot make sense of; callers record such failures at
// the per-item boundary.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/bodytext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements bodytext.Extractor at compile time.
var _ bodytext.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*bodytext.ExtractResult, error) {
	if rawHTML == "" {
		return nil, bodytext.Errorf(bodytext.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &bodytext.ExtractResult{
		Title:       result.Metadata.Title,
		Text:        bodytext.NormalizeWhitespace(result.ContentText),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
