// Package mock provides function-field mock implementations of the bodytext
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/bodytext"
)

var _ bodytext.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bodytext.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*bodytext.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*bodytext.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ bodytext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bodytext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*bodytext.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*bodytext.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ bodytext.Converter = (*Converter)(nil)

// Converter is a mock implementation of bodytext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ bodytext.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of bodytext.URLSource.
type URLSource struct {
	LoadFn func(path string) ([]string, error)
}

func (s *URLSource) Load(path string) ([]string, error) {
	return s.LoadFn(path)
}

var _ bodytext.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of bodytext.Exporter.
type Exporter struct {
	ExportFn func(rows []bodytext.Row) ([]byte, error)
}

func (e *Exporter) Export(rows []bodytext.Row) ([]byte, error) {
	return e.ExportFn(rows)
}

var _ bodytext.RunService = (*RunService)(nil)

// RunService is a mock implementation of bodytext.RunService.
type RunService struct {
	SaveRunFn     func(ctx context.Context, run *bodytext.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*bodytext.Run, error)
	FindRunsFn    func(ctx context.Context, limit int) ([]*bodytext.Run, error)
}

func (s *RunService) SaveRun(ctx context.Context, run *bodytext.Run) error {
	return s.SaveRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*bodytext.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*bodytext.Run, error) {
	return s.FindRunsFn(ctx, limit)
}
