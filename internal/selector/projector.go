package selector

import (
	"encoding/csv"
	"fmt"
	"io"

	apperrors "csvcli/internal/errors"
)

// Options configures a projection.
type Options struct {
	// Columns is the requested column list, in output order.
	Columns []string
	// Complement selects every header column not listed in Columns,
	// in header order.
	Complement bool
	// InComma is the input delimiter.
	InComma rune
	// OutComma is the output delimiter.
	OutComma rune
	// Round is the number of decimal digits to round numeric cells
	// to. Negative disables rounding.
	Round int
}

// Projector projects a CSV stream onto a column subset. The two
// implementations are behaviorally equivalent on well-formed input;
// StreamProjector is the default, BulkProjector trades memory for
// whole-table convenience.
type Projector interface {
	Project(r io.Reader, w io.Writer) error
}

// resolve validates the requested columns against the header and
// returns the index map of the effective column set.
func (o Options) resolve(header []string) ([]int, error) {
	if missing := MissingColumns(o.Columns, header); len(missing) > 0 {
		return nil, apperrors.SchemaMismatch(missing)
	}
	columns := o.Columns
	if o.Complement {
		columns = SetDiff(header, o.Columns)
	}
	return HeaderIndices(header, columns), nil
}

func (o Options) newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = o.InComma
	reader.FieldsPerRecord = -1
	return reader
}

func (o Options) newWriter(w io.Writer) *csv.Writer {
	writer := csv.NewWriter(w)
	writer.Comma = o.OutComma
	return writer
}

// StreamProjector projects row by row, retaining only the current row.
// Column validation and index resolution happen on the header row;
// output already flushed before a write error is not rolled back.
type StreamProjector struct {
	opts Options
}

// NewStreamProjector creates a streaming projector
func NewStreamProjector(opts Options) *StreamProjector {
	return &StreamProjector{opts: opts}
}

// Project implements Projector
func (p *StreamProjector) Project(r io.Reader, w io.Writer) error {
	reader := p.opts.newReader(r)
	writer := p.opts.newWriter(w)

	var indices []int
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if header {
			indices, err = p.opts.resolve(row)
			if err != nil {
				return err
			}
			header = false
		}
		if err := p.writeProjected(writer, row, indices); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (p *StreamProjector) writeProjected(writer *csv.Writer, row []string, indices []int) error {
	out := projectRow(row, indices)
	if p.opts.Round >= 0 {
		roundRow(out, p.opts.Round)
	}
	if err := writer.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// BulkProjector reads the entire input table before producing any
// output.
type BulkProjector struct {
	opts Options
}

// NewBulkProjector creates a whole-table-in-memory projector
func NewBulkProjector(opts Options) *BulkProjector {
	return &BulkProjector{opts: opts}
}

// Project implements Projector
func (p *BulkProjector) Project(r io.Reader, w io.Writer) error {
	rows, err := p.opts.newReader(r).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	indices, err := p.opts.resolve(rows[0])
	if err != nil {
		return err
	}

	writer := p.opts.newWriter(w)
	for _, row := range rows {
		out := projectRow(row, indices)
		if p.opts.Round >= 0 {
			roundRow(out, p.opts.Round)
		}
		if err := writer.Write(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
