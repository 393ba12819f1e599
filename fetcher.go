package bodytext

import "context"

// FetchResult holds the outcome of one successful HTTP fetch.
type FetchResult struct {
	// StatusCode is the HTTP status of the final response. Non-2xx codes
	// are data, not errors; downstream consumers decide what to do with them.
	StatusCode int

	// FinalURL is the URL after following redirects.
	FinalURL string

	// HTML is the raw response body as text.
	HTML string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the status, final URL and body.
	// It fails only on transport-level problems (timeout, connection refused,
	// DNS failure, malformed URL), reported with code EUNAVAILABLE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
