// widesplit splits a wide CSV file into several files of a configured
// column width. Each output carries the header and the first (key)
// column, and can additionally be rendered to .tex or .xlsx.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"csvcli/internal/config"
	apperrors "csvcli/internal/errors"
	"csvcli/internal/infrastructure"
	"csvcli/internal/render"
	"csvcli/internal/splitter"
)

func main() {
	ncols := flag.Int("n", 0, "number of columns per chunk (0 = no splitting)")
	delimiter := flag.String("d", ",", "csv delimiter")
	tex := flag.Bool("t", false, "convert output chunks to .tex")
	xlsx := flag.Bool("x", false, "convert output chunks to .xlsx")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <csv file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	comma, err := config.ParseDelimiter(*delimiter)
	if err != nil {
		fail(ctx, logger, err)
	}

	var converters []render.Converter
	if *tex {
		converters = append(converters, render.NewLatexConverter(cfg.Convert.LatexCommand, comma))
	}
	if *xlsx {
		converters = append(converters, render.NewXLSXConverter(comma))
	}

	opts := splitter.Options{
		Path:       flag.Arg(0),
		Width:      *ncols,
		Comma:      comma,
		Converters: converters,
	}

	splits, err := splitter.New(opts, logger).Run(ctx)
	if err != nil {
		fail(ctx, logger, err)
	}

	logger.InfoContext(ctx, "Split completed",
		slog.String("path", opts.Path),
		slog.Int("splits", len(splits)))
}

// fail reports a fatal error and exits non-zero
func fail(ctx context.Context, logger *slog.Logger, err error) {
	fmt.Fprintln(os.Stderr, err)
	logger.ErrorContext(ctx, "Split failed",
		slog.String("error", err.Error()),
		slog.String("code", string(apperrors.CodeOf(err))))
	os.Exit(apperrors.ExitCode(err))
}
