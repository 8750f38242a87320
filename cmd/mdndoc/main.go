package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdndoc"
	"github.com/fwojciec/mdndoc/goquery"
	mdnhttp "github.com/fwojciec/mdndoc/http"
	mdnslog "github.com/fwojciec/mdndoc/slog"
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
type Main struct {
	// Documentation origin. Set before calling Run().
	BaseURL string

	// Fetcher used by the engine. Created by Run() if nil.
	Fetcher mdndoc.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseURL: mdndoc.BaseURL,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdndoc"),
		kong.Description("Look up JavaScript methods and MIME types on MDN web docs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mdndoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Fetcher == nil {
		m.Fetcher = mdnhttp.NewFetcher(mdnhttp.WithTimeout(cli.Timeout))
	}
	defer m.Close()

	var fetcher mdndoc.Fetcher = m.Fetcher
	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = mdnslog.NewLoggingFetcher(fetcher, logger)
	}

	engine := goquery.NewEngine(fetcher, goquery.WithBaseURL(m.BaseURL))
	deps.Definitions = engine
	deps.Mimes = engine
	if logger != nil {
		deps.Definitions = mdnslog.NewLoggingDefinitionService(deps.Definitions, logger)
		deps.Mimes = mdnslog.NewLoggingMimeService(deps.Mimes, logger)
	}

	return kongCtx.Run(deps)
}
