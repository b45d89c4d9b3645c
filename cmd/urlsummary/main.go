// cmd/urlsummary/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"urlsummary/internal/adapters/input"
	"urlsummary/internal/adapters/output"
	"urlsummary/internal/core/domain"
	"urlsummary/internal/core/ports"
	"urlsummary/internal/core/usecases"
	"urlsummary/internal/platform/config"
	"urlsummary/internal/platform/errors"
	"urlsummary/internal/platform/logx"
)

var (
	// Set with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	// 1. Configuration
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "Try: urlsummary -h for help")
		return exitConfig
	}
	if cfg.ShowHelp {
		config.PrintHelp(stdout)
		return exitOK
	}
	if cfg.PrintVersion {
		config.PrintVersion(stdout, version, commit, date)
		return exitOK
	}

	// 2. Logger on stderr; stdout carries only the summary
	logger := newLogger(cfg, stderr)
	if doc, err := cfg.ToYAML(); err == nil {
		logger.Debug("effective configuration\n" + strings.TrimRight(doc, "\n"))
	}

	// 3. Renderer
	exporter, err := output.New(cfg.Output.Format, logger)
	if err != nil {
		logger.Err(err, "phase", "config")
		return exitCode(err)
	}

	opts := usecases.Options{
		TopItems:          cfg.Summary.TopItems,
		TopURLs:           cfg.Summary.TopURLs,
		RandomizeSample:   cfg.Summary.RandomizeSample,
		OnParseError:      domain.ErrorPolicy(cfg.Summary.OnParseError),
		RegisteredDomains: cfg.Summary.RegisteredDomains,
	}

	logger.Debug("urlsummary starting",
		"version", version,
		"format", exporter.Name(),
		"top_items", opts.TopItems,
		"top_urls", opts.TopURLs,
		"randomize", opts.RandomizeSample,
		"on_error", opts.OnParseError,
	)

	// 4. Context and signals; an interrupt stops reading input
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 5. Input
	var src ports.URLSource = input.OpenAll(ctx, cfg.Inputs, logger)
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn("failed to close input", "source", src.Name(), "error", err.Error())
		}
	}()

	// 6. Build
	builder := usecases.NewSummaryBuilder(opts, logger)
	result, stats, buildErr := builder.Build(src.URLs())
	if buildErr != nil {
		logger.Err(buildErr, "phase", "build")
		return exitCode(buildErr)
	}
	if err := src.Err(); err != nil {
		if errors.IsInvalidInput(err) {
			// unopenable or undecodable input: no line position to report
			logger.Err(err, "phase", "input")
		} else {
			logger.Err(err, "phase", "input", "lines", src.Lines())
		}
		return exitFailed
	}

	// 7. Render
	exportOpts := ports.DefaultExportOptions()
	exportOpts.Title = cfg.Output.Title
	exportOpts.Color = cfg.Output.Color && cfg.Output.Path == "" && isTerminal(stdout)
	exportOpts.Metadata = map[string]string{
		"version":      version,
		"input":        src.Name(),
		"input_urls":   strconv.Itoa(stats.InputURLs),
		"skipped_urls": strconv.Itoa(stats.SkippedURLs),
		"groups":       strconv.Itoa(stats.Groups),
	}
	if !exportOpts.Color {
		pterm.DisableColor()
	}

	if err := writeOutput(exporter, cfg, result, exportOpts, stdout, logger); err != nil {
		logger.Err(err, "phase", "output")
		return exitFailed
	}

	// 8. Summary
	logger.Info("urlsummary finished",
		"input", src.Name(),
		"urls", stats.InputURLs,
		"skipped", stats.SkippedURLs,
		"groups", stats.Groups,
		"retained", stats.Retained,
		"elapsed_ms", stats.DurationMs,
	)

	return exitOK
}

// writeOutput renders to the configured file, or to stdout.
func writeOutput(exporter ports.Exporter, cfg config.Config, result domain.SummaryResult,
	opts ports.ExportOptions, stdout io.Writer, logger logx.Logger) error {
	if cfg.Output.Path == "" {
		return exporter.Export(stdout, result, opts)
	}

	path, err := output.NewFileWriter(exporter, logger).Write(cfg.Output.Path, result, opts)
	if err != nil {
		return fmt.Errorf("%s output: %w", exporter.Name(), err)
	}
	logger.Info("summary written", "file", path)
	return nil
}

// newLogger applies --verbose/--quiet over URLSUMMARY_LOG_LEVEL.
func newLogger(cfg config.Config, w io.Writer) logx.Logger {
	switch {
	case cfg.Log.Verbose:
		return logx.NewWriter(w, logx.LevelDebug)
	case cfg.Log.Quiet:
		return logx.NewWriter(w, logx.LevelError)
	default:
		return logx.New(w)
	}
}

// exitCode maps a failure to the process exit status.
func exitCode(err error) int {
	if errors.IsInvalidConfig(err) || errors.IsUnsupportedFormat(err) {
		return exitConfig
	}
	return exitFailed
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) && !strings.EqualFold(os.Getenv("TERM"), "dumb")
}

// rootContextWithSignals creates a root context cancelled on SIGINT or SIGTERM.
// The returned cancel function also stops signal delivery.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
