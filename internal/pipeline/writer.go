package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ProductWriter streams output rows to the products CSV, one row per
// Write call, so back-pressure is the caller's read loop.
type ProductWriter struct {
	file   *os.File
	writer *csv.Writer
}

func NewProductWriter(path string) (*ProductWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create products file %s: %w", path, err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(ProductColumns()); err != nil {
		f.Close()
		return nil, fmt.Errorf("write products header: %w", err)
	}

	return &ProductWriter{file: f, writer: writer}, nil
}

func (w *ProductWriter) Write(row ProductRow) error {
	if err := w.writer.Write(row.Values()); err != nil {
		return fmt.Errorf("write products row: %w", err)
	}
	return nil
}

func (w *ProductWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("flush products file: %w", err)
	}
	return w.file.Close()
}

// ExportCSVToXLSX converts a finished products CSV into an XLSX
// workbook for manual review.
func ExportCSVToXLSX(csvPath, outputPath string) (int, error) {
	in, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open products file %s: %w", csvPath, err)
	}
	defer in.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	rows := 0
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read products row %d: %w", rows+1, err)
		}
		rows++
		for c, value := range cells {
			cell, _ := excelize.CoordinatesToCellName(c+1, rows)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir for %s: %w", outputPath, err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return 0, fmt.Errorf("save workbook %s: %w", outputPath, err)
	}
	return rows, nil
}
