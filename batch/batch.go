// Package batch provides the per-URL processing orchestrator. It coordinates
// fetching, extraction and optional markdown conversion over a deduplicated
// URL list, isolating per-item failures into row error fields and applying a
// client-side inter-request delay.
package batch

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/bodytext"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Runner orchestrates one batch over a list of URLs.
type Runner struct {
	Fetcher   bodytext.Fetcher
	Extractor bodytext.Extractor

	// Converter, when set, replaces the extracted body text with a markdown
	// rendition of the cleaned content HTML. Conversion failures fall back
	// to the plain text, never to a row error.
	Converter bodytext.Converter

	// Delay is the pause enforced between consecutive requests.
	Delay time.Duration

	// Concurrency bounds parallel fetches. Values <= 1 run strictly
	// sequentially, which is the default behavior.
	Concurrency int
}

// indexedRow pairs a row with its input position so concurrent workers can
// report results without losing input order.
type indexedRow struct {
	position int
	row      bodytext.Row
}

// Run processes every URL in input order and returns one Row per URL, in the
// same order. A failing URL never aborts the batch; its row carries the error
// message and zero data fields. The progress callback, if provided, is
// invoked serially after each processed item. Run returns an error only when
// the context is canceled before all URLs are processed.
func (r *Runner) Run(ctx context.Context, urls []string, progress bodytext.ProgressFunc) (*bodytext.Run, error) {
	run := &bodytext.Run{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Rows:      make([]bodytext.Row, len(urls)),
	}

	limiter := r.newLimiter()

	if r.Concurrency > 1 {
		if err := r.runConcurrent(ctx, urls, limiter, run.Rows, progress); err != nil {
			return nil, err
		}
	} else {
		if err := r.runSequential(ctx, urls, limiter, run.Rows, progress); err != nil {
			return nil, err
		}
	}

	for _, row := range run.Rows {
		if row.Failed() {
			run.Failed++
		} else {
			run.Succeeded++
		}
	}

	return run, nil
}

// newLimiter translates the configured delay into a token bucket with burst
// 1, so request starts are spaced Delay apart. A zero delay disables
// limiting.
func (r *Runner) newLimiter() *rate.Limiter {
	if r.Delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(r.Delay), 1)
}

func (r *Runner) runSequential(ctx context.Context, urls []string, limiter *rate.Limiter, rows []bodytext.Row, progress bodytext.ProgressFunc) error {
	total := len(urls)
	for i, url := range urls {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		rows[i] = r.processURL(ctx, url)

		if progress != nil {
			progress(bodytext.Progress{
				URL:       url,
				Completed: i + 1,
				Total:     total,
				Err:       rowError(rows[i]),
			})
		}
	}
	return nil
}

// runConcurrent fans URLs out to a bounded worker pool. Results are collected
// by input position so output order matches input order, and progress is
// reported from the collecting loop so the callback stays serial.
func (r *Runner) runConcurrent(ctx context.Context, urls []string, limiter *rate.Limiter, rows []bodytext.Row, progress bodytext.ProgressFunc) error {
	total := len(urls)
	resultCh := make(chan indexedRow, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}
				resultCh <- indexedRow{position: i, row: r.processURL(gctx, url)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for result := range resultCh {
		rows[result.position] = result.row
		completed++

		if progress != nil {
			progress(bodytext.Progress{
				URL:       result.row.InputURL,
				Completed: completed,
				Total:     total,
				Err:       rowError(result.row),
			})
		}
	}

	return g.Wait()
}

// processURL fetches and extracts a single URL, folding any failure into the
// returned row.
func (r *Runner) processURL(ctx context.Context, url string) bodytext.Row {
	res, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return failedRow(url, err)
	}

	extracted, err := r.Extractor.Extract(res.HTML)
	if err != nil {
		return failedRow(url, err)
	}

	text := extracted.Text
	if r.Converter != nil && extracted.ContentHTML != "" {
		if markdown, err := r.Converter.Convert(extracted.ContentHTML); err == nil {
			text = bodytext.NormalizeWhitespace(markdown)
		}
	}

	return bodytext.Row{
		InputURL:   url,
		FinalURL:   res.FinalURL,
		HTTPStatus: res.StatusCode,
		Title:      extracted.Title,
		BodyText:   text,
		BodyLen:    utf8.RuneCountInString(text),
	}
}

// failedRow builds the error-only row for a per-item failure.
func failedRow(url string, err error) bodytext.Row {
	return bodytext.Row{
		InputURL: url,
		Error:    bodytext.ErrorMessage(err),
	}
}

// rowError reconstructs an error value for progress reporting.
func rowError(row bodytext.Row) error {
	if !row.Failed() {
		return nil
	}
	return bodytext.Errorf(bodytext.EUNAVAILABLE, "%s", row.Error)
}
