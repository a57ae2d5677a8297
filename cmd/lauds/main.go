package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/collect"
	"github.com/fwojciec/lauds/etree"
	"github.com/fwojciec/lauds/fs"
	"github.com/fwojciec/lauds/goquery"
	"github.com/fwojciec/lauds/htmltomarkdown"
	laudshttp "github.com/fwojciec/lauds/http"
	"github.com/fwojciec/lauds/rod"
	laudsslog "github.com/fwojciec/lauds/slog"
	"github.com/fwojciec/lauds/sqlite"
	laudsyaml "github.com/fwojciec/lauds/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration file path. Set before calling Run().
	ConfigPath string

	// Database path overriding the configuration. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService lauds.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		DBPath:     os.Getenv("LAUDS_DB"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lauds"),
		kong.Description("Extract Morning Prayer from the breviary into structured records."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lauds --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Selected().Name

	cfg, err := laudsyaml.LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set LAUDS_CONFIG to use a different configuration file\n")
		return fmt.Errorf("failed to load config from %q: %w", m.ConfigPath, err)
	}
	if m.DBPath != "" {
		cfg.Database = m.DBPath
	}
	if cfg.Database == "" {
		cfg.Database = defaultDataPath("lauds.db")
	}
	if cfg.Snapshots == "" {
		cfg.Snapshots = defaultDataPath("snapshots")
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Config = cfg
	deps.Logger = logger
	deps.Extractor = laudsslog.NewLoggingExtractor(goquery.NewExtractor(
		goquery.WithKnownAntiphons(cfg.Extract.KnownAntiphons),
		goquery.WithIntercessionResponses(cfg.Extract.IntercessionResponses),
	), logger)
	deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL(cfg.BaseURL))
	deps.Exporter = etree.NewExporter()

	// Offline commands work on files and never touch the database.
	switch cmd {
	case "extract", "inspect", "config":
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(cfg.Database)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LAUDS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.Database, err)
	}
	defer m.Close()

	m.RecordService = laudsslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger)
	deps.Records = m.RecordService

	if cmd == "fetch" || cmd == "reextract" {
		collector := &collect.Collector{
			Extractor:   deps.Extractor,
			Records:     m.RecordService,
			Snapshots:   fs.NewSnapshotStore(cfg.Snapshots),
			RateLimiter: collect.NewLimiter(cfg.Fetch.RequestsPerSecond),
			Concurrency: cfg.Fetch.Concurrency,
			RetryDelays: cfg.Fetch.RetryDelays,
		}

		if cmd == "fetch" {
			source, err := newSource(cfg, cli.Fetch.HTTP, logger)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --http")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer source.Close()
			collector.Source = source
		}

		deps.Collector = collector
	}

	return kongCtx.Run(deps)
}

// newSource returns the page source for fetching: a headless browser that
// can select any date, or plain HTTP requests that see today only.
func newSource(cfg lauds.Config, useHTTP bool, logger *slog.Logger) (lauds.PageSource, error) {
	if useHTTP {
		fetcher := laudsslog.NewLoggingFetcher(laudshttp.NewFetcher(laudshttp.WithTimeout(cfg.Fetch.Timeout)), logger)
		return laudsslog.NewLoggingSource(laudshttp.NewSource(fetcher,
			laudshttp.WithBaseURL(cfg.BaseURL),
			laudshttp.WithMinPageSize(cfg.Fetch.MinPageSize),
		), logger), nil
	}

	manager, err := rod.NewBrowserManager()
	if err != nil {
		return nil, err
	}
	return laudsslog.NewLoggingSource(rod.NewSource(manager,
		rod.WithBaseURL(cfg.BaseURL),
		rod.WithTimeout(cfg.Fetch.Timeout),
	), logger), nil
}

func defaultConfigPath() string {
	if path := os.Getenv("LAUDS_CONFIG"); path != "" {
		return path
	}
	path, err := laudsyaml.DefaultPath()
	if err != nil {
		return "config.yaml"
	}
	return path
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	dir := filepath.Join(home, ".lauds")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, name)
}
