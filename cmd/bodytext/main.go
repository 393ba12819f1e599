// Command bodytext fetches a list of URLs, strips boilerplate from each page
// and writes the extracted body text to an XLSX spreadsheet.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bodytext"
	"github.com/fwojciec/bodytext/batch"
	"github.com/fwojciec/bodytext/fs"
	"github.com/fwojciec/bodytext/goquery"
	"github.com/fwojciec/bodytext/htmltomarkdown"
	bodytexthttp "github.com/fwojciec/bodytext/http"
	bodytextslog "github.com/fwojciec/bodytext/slog"
	"github.com/fwojciec/bodytext/sqlite"
	"github.com/fwojciec/bodytext/trafilatura"
	"github.com/fwojciec/bodytext/xlsx"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bodytext"),
		kong.Description("Fetch URLs and extract clean body text to a spreadsheet"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Validate batch settings before touching the input file or the network.
	cfg := bodytext.Config{
		Timeout:   cli.Timeout,
		Delay:     cli.Delay,
		UserAgent: cli.UserAgent,
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = bodytext.DefaultUserAgent
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %s", bodytext.ErrorMessage(err))
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var source bodytext.URLSource = fs.NewSource()
	if cli.Verbose {
		source = bodytextslog.NewLoggingSource(source, logger)
	}
	deps.Source = source

	var fetcher bodytext.Fetcher = bodytexthttp.NewFetcher(
		bodytexthttp.WithTimeout(cfg.Timeout),
		bodytexthttp.WithUserAgent(cfg.UserAgent),
	)
	defer fetcher.Close()
	if cli.Verbose {
		fetcher = bodytextslog.NewLoggingFetcher(fetcher, logger)
	}

	var extractor bodytext.Extractor
	switch cli.Extractor {
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	var converter bodytext.Converter
	if cli.Markdown {
		converter = htmltomarkdown.NewConverter()
	}

	deps.Runner = &batch.Runner{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Converter:   converter,
		Delay:       cfg.Delay,
		Concurrency: cli.Concurrency,
	}

	deps.Exporter = xlsx.NewExporter()

	// Optional run history database
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		deps.Runs = sqlite.NewRunService(db)
	}

	cmd := &ExtractCmd{
		Input:  cli.Input,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input       string        `arg:"" required:"" help:"File with URLs to process (TXT/CSV/XLSX)"`
	Output      string        `short:"o" default:"body_extract.xlsx" help:"Output XLSX path"`
	Timeout     time.Duration `short:"t" default:"25s" help:"HTTP timeout per request (5s-120s)"`
	Delay       time.Duration `short:"d" default:"200ms" help:"Delay between requests (0-5s)"`
	UserAgent   string        `help:"User-Agent header (defaults to a ContentExtractor UA)"`
	Extractor   string        `default:"heuristic" enum:"heuristic,trafilatura" help:"Extraction strategy"`
	Markdown    bool          `help:"Render body text as markdown"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit (1 = sequential)"`
	DB          string        `help:"Optional SQLite database recording run history"`
	Verbose     bool          `short:"v" help:"Log fetch and load operations"`
}
