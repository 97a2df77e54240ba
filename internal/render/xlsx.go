package render

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	apperrors "csvcli/internal/errors"
)

// xlsxSheet is the sheet name used for rendered workbooks.
const xlsxSheet = "Sheet1"

// XLSXConverter renders a CSV file as an Excel workbook.
type XLSXConverter struct {
	// Comma is the delimiter of the input CSV files.
	Comma rune
}

// NewXLSXConverter creates an XLSX converter for the given delimiter
func NewXLSXConverter(comma rune) *XLSXConverter {
	return &XLSXConverter{Comma: comma}
}

// Ext implements Converter
func (c *XLSXConverter) Ext() string {
	return ".xlsx"
}

// Convert implements Converter
func (c *XLSXConverter) Convert(ctx context.Context, inputPath string) ([]byte, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, apperrors.FileSystem("reading "+inputPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = c.Comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", r+1, err)
		}
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
