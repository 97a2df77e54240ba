// selectcols projects a CSV stream from stdin onto a chosen subset
// (or complement) of its columns and writes the result to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"csvcli/internal/config"
	apperrors "csvcli/internal/errors"
	"csvcli/internal/infrastructure"
	"csvcli/internal/selector"
)

func main() {
	columns := flag.String("columns", "", "comma-separated columns to select/drop")
	complement := flag.String("complement", "false", "if true, the given columns will be dropped (yes/no/true/false/t/f/y/n/1/0)")
	inputDelimiter := flag.String("input-delimiter", ",", "delimiter in the input csv")
	outputDelimiter := flag.String("output-delimiter", "", "output delimiter; empty preserves the input delimiter")
	inMemory := flag.Bool("in-memory", false, "read the entire input before writing any output")
	round := flag.Int("round", -1, "if non-negative, number of decimal digits to round numeric values to")
	flag.Parse()

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

	opts, err := buildOptions(*columns, *complement, *inputDelimiter, *outputDelimiter, *round)
	if err != nil {
		fail(ctx, logger, err)
	}

	var projector selector.Projector
	if *inMemory {
		projector = selector.NewBulkProjector(opts)
	} else {
		projector = selector.NewStreamProjector(opts)
	}

	logger.InfoContext(ctx, "Starting column projection",
		slog.Any("columns", opts.Columns),
		slog.Bool("complement", opts.Complement),
		slog.Bool("in_memory", *inMemory),
		slog.Int("round", opts.Round))

	if err := projector.Project(os.Stdin, os.Stdout); err != nil {
		fail(ctx, logger, err)
	}

	logger.InfoContext(ctx, "Column projection completed")
}

// buildOptions validates the flag values and assembles the projection
// options
func buildOptions(columns, complement, inDelim, outDelim string, round int) (selector.Options, error) {
	comp, err := config.ParseBool(complement)
	if err != nil {
		return selector.Options{}, err
	}

	inComma, err := config.ParseDelimiter(inDelim)
	if err != nil {
		return selector.Options{}, err
	}

	outComma := inComma
	if outDelim != "" {
		if outComma, err = config.ParseDelimiter(outDelim); err != nil {
			return selector.Options{}, err
		}
	}

	return selector.Options{
		Columns:    config.ParseColumns(columns),
		Complement: comp,
		InComma:    inComma,
		OutComma:   outComma,
		Round:      round,
	}, nil
}

// fail reports a fatal error to stderr and the log, then exits
// non-zero. Missing columns are listed one per line, matching the
// diagnostic the operation's consumers expect.
func fail(ctx context.Context, logger *slog.Logger, err error) {
	var ce *apperrors.CLIError
	if errors.As(err, &ce) && ce.Code == apperrors.CodeSchemaMismatch {
		fmt.Fprintln(os.Stderr, "The following columns are not present. Exiting.")
		for _, name := range ce.Details {
			fmt.Fprintln(os.Stderr, name)
		}
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	logger.ErrorContext(ctx, "Column projection failed",
		slog.String("error", err.Error()),
		slog.String("code", string(apperrors.CodeOf(err))))
	os.Exit(apperrors.ExitCode(err))
}
