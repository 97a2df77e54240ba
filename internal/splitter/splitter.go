// Package splitter partitions a wide CSV file's columns into several
// narrower CSV files. The first column is the row key and is carried
// into every output together with the header.
package splitter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "csvcli/internal/errors"
	"csvcli/internal/exporter"
	"csvcli/internal/render"
)

// commentMarker prefixes input rows that are dropped before splitting.
const commentMarker = '#'

// Options configures a split run.
type Options struct {
	// Path is the CSV file to split.
	Path string
	// Width is the number of non-key columns per output file.
	// Zero or negative means no splitting: one output carrying
	// every column.
	Width int
	// Comma is the delimiter of input and outputs.
	Comma rune
	// Converters are applied to every output file after splitting.
	Converters []render.Converter
}

// Splitter splits one wide CSV file according to its Options.
type Splitter struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Splitter
func New(opts Options, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{opts: opts, logger: logger}
}

// ComputeSplits returns the output file names for the given header.
// Chunk count is ceil((len(header)-1)/width); names are the input base
// name plus a zero-padded index, padded to the width of the largest
// index.
func (s *Splitter) ComputeSplits(header []string) []string {
	ncols := len(header) - 1
	width := s.chunkWidth(ncols)

	nsplits := ncols / width
	if ncols%width != 0 {
		nsplits++
	}

	basename := strings.TrimSuffix(s.opts.Path, filepath.Ext(s.opts.Path))
	ndigits := len(strconv.Itoa(nsplits - 1))

	splits := make([]string, nsplits)
	for i := range splits {
		splits[i] = fmt.Sprintf("%s%0*d.csv", basename, ndigits, i)
	}
	return splits
}

// chunkWidth resolves the configured width against the splittable
// column count
func (s *Splitter) chunkWidth(ncols int) int {
	if s.opts.Width <= 0 || s.opts.Width > ncols {
		return ncols
	}
	return s.opts.Width
}

// Run reads the input file, writes every split and applies the
// configured converters. It returns the split file names. Converter
// failure is fatal, but splits already written stay on disk.
func (s *Splitter) Run(ctx context.Context) ([]string, error) {
	header, rows, err := s.readTable()
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, apperrors.Configuration("%s has no columns to split", s.opts.Path)
	}

	splits := s.ComputeSplits(header)
	width := s.chunkWidth(len(header) - 1)
	s.logger.InfoContext(ctx, "splitting CSV file",
		slog.String("path", s.opts.Path),
		slog.Int("columns", len(header)-1),
		slog.Int("chunk_width", width),
		slog.Int("splits", len(splits)))

	for i, filename := range splits {
		l := i*width + 1
		r := l + width
		if r > len(header) {
			r = len(header)
		}

		if err := s.writeSplit(filename, header, rows, l, r); err != nil {
			return nil, err
		}
		s.logger.DebugContext(ctx, "wrote split",
			slog.String("path", filename),
			slog.Int("columns", r-l))
	}

	for _, c := range s.opts.Converters {
		for _, filename := range splits {
			target, err := render.RenderFile(ctx, c, filename)
			if err != nil {
				return nil, err
			}
			s.logger.DebugContext(ctx, "rendered split",
				slog.String("path", target))
		}
	}

	return splits, nil
}

// writeSplit streams one split to filename: the restricted header
// first, then the key cell plus the [l, r) cells of every data row.
func (s *Splitter) writeSplit(filename string, header []string, rows [][]string, l, r int) error {
	w, err := exporter.NewStreamWriter(filename,
		append([]string{""}, header[l:r]...), s.opts.Comma)
	if err != nil {
		return apperrors.FileSystem("writing split "+filename, err)
	}

	for _, row := range rows {
		if err := w.WriteRecord(keyedSlice(row, l, r)); err != nil {
			w.Close()
			return apperrors.FileSystem("writing split "+filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return apperrors.FileSystem("writing split "+filename, err)
	}
	return nil
}

// readTable reads the whole input file, dropping comment rows, and
// returns the header and the data rows.
func (s *Splitter) readTable() ([]string, [][]string, error) {
	file, err := os.Open(s.opts.Path)
	if err != nil {
		return nil, nil, apperrors.FileSystem("opening "+s.opts.Path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = s.opts.Comma
	reader.Comment = commentMarker
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", s.opts.Path, err)
	}
	if len(rows) == 0 {
		return nil, nil, apperrors.Configuration("%s has no rows besides comments", s.opts.Path)
	}
	return rows[0], rows[1:], nil
}

// keyedSlice returns the key cell of row followed by the cells in
// [l, r), clamped to the row's length.
func keyedSlice(row []string, l, r int) []string {
	out := []string{""}
	if len(row) > 0 {
		out[0] = row[0]
	}
	if l > len(row) {
		l = len(row)
	}
	if r > len(row) {
		r = len(row)
	}
	return append(out, row[l:r]...)
}
