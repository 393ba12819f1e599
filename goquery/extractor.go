// Package goquery provides the heuristic boilerplate-removing implementation
// of bodytext.Extractor built on the goquery DOM.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bodytext"
	"golang.org/x/net/html"
)

// Ensure Extractor implements bodytext.Extractor at compile time.
var _ bodytext.Extractor = (*Extractor)(nil)

const (
	// nonContentTags never carry readable text.
	nonContentTags = "script, style, noscript, svg, canvas, iframe"

	// layoutTags hold page chrome rather than article content.
	layoutTags = "header, footer, nav, aside"
)

// junkAttrPattern matches id/class values of cookie banners, consent
// dialogs and similar overlays.
var junkAttrPattern = regexp.MustCompile(`(?i)(cookie|consent|gdpr|newsletter|popup|modal|overlay)`)

// Extractor strips boilerplate from HTML pages and returns normalized body
// text. It never fails: malformed markup and body-less documents degrade to
// best-effort whole-document text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and cleaned body
// text. The returned error is always nil.
func (e *Extractor) Extract(rawHTML string) (*bodytext.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// No DOM to work with: treat the input as plain text.
		return &bodytext.ExtractResult{Text: bodytext.NormalizeWhitespace(rawHTML)}, nil
	}

	title := collapseWhitespace(doc.Find("title").First().Text())

	body := doc.Find("body").First()
	if body.Length() == 0 {
		// Fallback: whole-document text.
		var text string
		if len(doc.Nodes) > 0 {
			text = bodytext.NormalizeWhitespace(blockText(doc.Nodes[0]))
		}
		return &bodytext.ExtractResult{Title: title, Text: text}, nil
	}

	body.Find(nonContentTags).Remove()
	body.Find(layoutTags).Remove()
	removeJunkElements(body)

	text := bodytext.NormalizeWhitespace(blockText(body.Get(0)))

	contentHTML, err := goquery.OuterHtml(body)
	if err != nil {
		contentHTML = ""
	}

	return &bodytext.ExtractResult{
		Title:       title,
		Text:        text,
		ContentHTML: contentHTML,
	}, nil
}

// removeJunkElements detaches every element under body whose id or class
// matches junkAttrPattern. The body element itself is never detached, even
// when its own attributes match; the guard is an identity check against the
// body node.
func removeJunkElements(body *goquery.Selection) {
	bodyNode := body.Get(0)
	body.Find("[id], [class]").Each(func(_ int, s *goquery.Selection) {
		if s.Get(0) == bodyNode {
			return
		}
		if matchesJunkAttrs(s) {
			s.Remove()
		}
	})
}

// matchesJunkAttrs reports whether the selection's id or class attribute
// matches the junk pattern.
func matchesJunkAttrs(s *goquery.Selection) bool {
	if id, ok := s.Attr("id"); ok && junkAttrPattern.MatchString(id) {
		return true
	}
	if class, ok := s.Attr("class"); ok && junkAttrPattern.MatchString(class) {
		return true
	}
	return false
}

// blockText collects the text nodes under n in document order, trimming each
// and joining them with newlines so text from distinct blocks stays
// separated.
func blockText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			if t := strings.TrimSpace(cur.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, "\n")
}

// collapseWhitespace trims s and collapses internal whitespace runs to
// single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
