package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/bodytext"
	"github.com/fwojciec/bodytext/batch"
)

// Dependencies contains the wired services the extract command operates on.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source   bodytext.URLSource
	Runner   *batch.Runner
	Exporter bodytext.Exporter
	Runs     bodytext.RunService // optional, nil disables run history
}

// ExtractCmd loads URLs from a file, runs the extraction batch and writes
// the resulting spreadsheet.
type ExtractCmd struct {
	Input  string
	Output string
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	urls, err := deps.Source.Load(c.Input)
	if err != nil {
		return fmt.Errorf("failed to load URLs: %s", bodytext.ErrorMessage(err))
	}

	urls = bodytext.DedupURLs(urls)
	if len(urls) == 0 {
		return fmt.Errorf("no URLs found in %s", c.Input)
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d URLs from %s\n", len(urls), c.Input)

	progress := func(p bodytext.Progress) {
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, truncateURL(p.URL, 60))
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "\nfailed %s: %s\n", p.URL, bodytext.ErrorMessage(p.Err))
		}
	}

	run, err := deps.Runner.Run(deps.Ctx, urls, progress)
	if err != nil {
		return fmt.Errorf("batch aborted: %s", bodytext.ErrorMessage(err))
	}
	fmt.Fprintf(deps.Stdout, "\n")

	data, err := deps.Exporter.Export(run.Rows)
	if err != nil {
		return fmt.Errorf("failed to build spreadsheet: %s", bodytext.ErrorMessage(err))
	}

	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	if deps.Runs != nil {
		if err := deps.Runs.SaveRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to record run: %s\n", bodytext.ErrorMessage(err))
		}
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d rows to %s (%d ok, %d failed)\n",
		len(run.Rows), c.Output, run.Succeeded, run.Failed)

	return nil
}

// truncateURL shortens a URL for single-line progress display.
func truncateURL(url string, maxLen int) string {
	if len(url) <= maxLen {
		return url
	}
	if maxLen <= 3 {
		return url[:maxLen]
	}
	return url[:maxLen-3] + "..."
}
