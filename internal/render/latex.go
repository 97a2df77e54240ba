package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	apperrors "csvcli/internal/errors"
)

// latexSeparators maps a CSV delimiter to the separator code the
// csv2latex tool expects.
var latexSeparators = map[rune]string{
	',':  "c",
	';':  "s",
	'\t': "t",
	' ':  "p",
	':':  "l",
}

// LatexConverter renders a CSV file to LaTeX by shelling out to the
// csv2latex tool.
type LatexConverter struct {
	// Command is the converter executable, usually "csv2latex".
	Command string
	// Comma is the delimiter of the input CSV files.
	Comma rune
}

// NewLatexConverter creates a LaTeX converter for the given command
// and delimiter
func NewLatexConverter(command string, comma rune) *LatexConverter {
	return &LatexConverter{Command: command, Comma: comma}
}

// Ext implements Converter
func (c *LatexConverter) Ext() string {
	return ".tex"
}

// Convert implements Converter. The tool is invoked with row numbering
// disabled, a 2-row repeat count, right alignment, escaping enabled
// and a 0.75 column-width factor; its stdout is the rendered table.
func (c *LatexConverter) Convert(ctx context.Context, inputPath string) ([]byte, error) {
	sep, ok := latexSeparators[c.Comma]
	if !ok {
		return nil, apperrors.ExternalTool(
			fmt.Sprintf("no %s separator code for delimiter %q", c.Command, c.Comma), nil)
	}

	cmd := exec.CommandContext(ctx, c.Command,
		"-s", sep, "-n", "-r", "2", "-p", "r", "-e", "-c", "0.75", inputPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := fmt.Sprintf("%s failed for %s", c.Command, inputPath)
		if stderr.Len() > 0 {
			msg = msg + ": " + stderr.String()
		}
		return nil, apperrors.ExternalTool(msg, err)
	}

	return stdout.Bytes(), nil
}
