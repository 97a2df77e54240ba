// Package render converts CSV files produced by the splitter into
// other presentations. Each Converter is a single-operation capability
// so the external tool can be stubbed in tests.
package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	apperrors "csvcli/internal/errors"
)

// Converter turns a CSV file into rendered output bytes.
type Converter interface {
	// Ext returns the file extension of the rendered output,
	// including the leading dot.
	Ext() string
	// Convert renders the CSV file at inputPath.
	Convert(ctx context.Context, inputPath string) ([]byte, error)
}

// RenderFile converts csvPath and writes the result to a sibling file
// with the converter's extension, returning the output path.
func RenderFile(ctx context.Context, c Converter, csvPath string) (string, error) {
	out, err := c.Convert(ctx, csvPath)
	if err != nil {
		return "", err
	}

	target := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + c.Ext()
	if err := os.WriteFile(target, out, 0644); err != nil {
		return "", apperrors.FileSystem("rendering "+target, err)
	}
	return target, nil
}
