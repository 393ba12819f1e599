// Package http provides an HTTP-based implementation of bodytext.Fetcher
// for retrieving raw page HTML from static sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/bodytext"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 25 * time.Second

// Ensure Fetcher implements bodytext.Fetcher at compile time.
var _ bodytext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP GET requests.
// Redirects are followed transparently; the final URL after redirection is
// reported on the result. It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (25s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to bodytext.DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient replaces the underlying http.Client. The client's own timeout
// takes precedence over WithTimeout.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: bodytext.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the page at url. Any HTTP status code received is returned
// as data on the result; only transport-level failures (timeout, connection
// refused, DNS failure, malformed URL) produce an error, with code
// EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*bodytext.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EUNAVAILABLE, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, bodytext.Errorf(bodytext.EUNAVAILABLE, "read body of %s: %v", url, err)
	}

	// resp.Request reflects the last request in the redirect chain.
	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &bodytext.FetchResult{
		StatusCode: resp.StatusCode,
		FinalURL:   finalURL,
		HTML:       string(body),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
