// Package exporter provides delimiter-aware streaming CSV file
// writing for the csvcli tools. Records are terminated with a single
// newline, never CRLF.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// StreamWriter writes a CSV file record by record.
type StreamWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewStreamWriter creates a streaming CSV writer for filePath,
// truncating any existing file and writing the header immediately.
// A zero comma means the default comma delimiter.
func NewStreamWriter(filePath string, header []string, comma rune) (*StreamWriter, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	writer := csv.NewWriter(file)
	if comma != 0 {
		writer.Comma = comma
	}

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	return &StreamWriter{
		file:   file,
		writer: writer,
	}, nil
}

// WriteRecord writes a single record to the stream
func (s *StreamWriter) WriteRecord(record []string) error {
	return s.writer.Write(record)
}

// Close flushes and closes the stream writer
func (s *StreamWriter) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
