package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"bookbridge/internal"
)

// BookSource streams book rows one at a time so the books table is
// never materialized in memory.
type BookSource interface {
	// Next returns the next row, or ok=false at end of input.
	Next() (internal.BookRecord, bool, error)
	Close() error
}

// OpenBookSource picks the reader by file extension: .xlsx workbooks
// go through excelize, anything else is parsed as CSV.
func OpenBookSource(path string) (BookSource, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return openXLSXBookSource(path)
	}
	return openCSVBookSource(path)
}

type csvBookSource struct {
	file    *os.File
	reader  *csv.Reader
	columns map[string]int
	rowNo   int
}

func openCSVBookSource(path string) (*csvBookSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open books file %s: %w", path, err)
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read books header %s: %w", path, err)
	}

	return &csvBookSource{
		file:    f,
		reader:  reader,
		columns: columnIndex(header),
		rowNo:   1,
	}, nil
}

func (s *csvBookSource) Next() (internal.BookRecord, bool, error) {
	cells, err := s.reader.Read()
	if err == io.EOF {
		return internal.BookRecord{}, false, nil
	}
	if err != nil {
		return internal.BookRecord{}, false, fmt.Errorf("read books row %d: %w", s.rowNo+1, err)
	}
	s.rowNo++
	return bookFromCells(s.columns, cells), true, nil
}

func (s *csvBookSource) Close() error {
	return s.file.Close()
}

type xlsxBookSource struct {
	file    *excelize.File
	rows    *excelize.Rows
	columns map[string]int
	rowNo   int
}

func openXLSXBookSource(path string) (*xlsxBookSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open books workbook %s: %w", path, err)
	}

	rows, err := f.Rows(f.GetSheetName(0))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read books workbook %s: %w", path, err)
	}

	if !rows.Next() {
		rows.Close()
		f.Close()
		return nil, fmt.Errorf("books workbook %s has no header row", path)
	}
	header, err := rows.Columns()
	if err != nil {
		rows.Close()
		f.Close()
		return nil, fmt.Errorf("read books header %s: %w", path, err)
	}

	return &xlsxBookSource{
		file:    f,
		rows:    rows,
		columns: columnIndex(header),
		rowNo:   1,
	}, nil
}

func (s *xlsxBookSource) Next() (internal.BookRecord, bool, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return internal.BookRecord{}, false, fmt.Errorf("read books row %d: %w", s.rowNo+1, err)
		}
		return internal.BookRecord{}, false, nil
	}
	cells, err := s.rows.Columns()
	if err != nil {
		return internal.BookRecord{}, false, fmt.Errorf("read books row %d: %w", s.rowNo+1, err)
	}
	s.rowNo++
	return bookFromCells(s.columns, cells), true, nil
}

func (s *xlsxBookSource) Close() error {
	s.rows.Close()
	return s.file.Close()
}

// ReadAuthors loads the authors table. It is small and fully
// materialized by design; the index must be complete before any book
// row is transformed.
func ReadAuthors(path string) ([]internal.AuthorRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readAuthorsXLSX(path)
	}
	return readAuthorsCSV(path)
}

func readAuthorsCSV(path string) ([]internal.AuthorRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open authors file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read authors header %s: %w", path, err)
	}
	columns := columnIndex(header)

	out := []internal.AuthorRecord{}
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read authors row %d: %w", len(out)+2, err)
		}
		out = append(out, authorFromCells(columns, cells))
	}
	return out, nil
}

func readAuthorsXLSX(path string) ([]internal.AuthorRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open authors workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read authors workbook %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := columnIndex(rows[0])
	out := make([]internal.AuthorRecord, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		out = append(out, authorFromCells(columns, cells))
	}
	return out, nil
}

func columnIndex(header []string) map[string]int {
	out := make(map[string]int, len(header))
	for i, h := range header {
		out[strings.TrimSpace(h)] = i
	}
	return out
}

func pick(columns map[string]int, cells []string, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func bookFromCells(columns map[string]int, cells []string) internal.BookRecord {
	return internal.BookRecord{
		Code:           strings.TrimSpace(pick(columns, cells, "BookCode")),
		Title:          pick(columns, cells, "Title"),
		Category:       pick(columns, cells, "Category"),
		Description:    pick(columns, cells, "Description"),
		RRP:            pick(columns, cells, "RRP"),
		CostPrice:      pick(columns, cells, "CostPrice"),
		Stock:          pick(columns, cells, "NoInStock"),
		AuthorID:       pick(columns, cells, "AuthorID"),
		Cover:          pick(columns, cells, "Cover"),
		FirstOrderDate: pick(columns, cells, "FirstOrderDate"),
		LastSaleDate:   pick(columns, cells, "LastSaleDate"),
		LastUpdate:     pick(columns, cells, "LastUpdate"),
		StocktakeDate:  pick(columns, cells, "StocktakeDate"),
	}
}

func authorFromCells(columns map[string]int, cells []string) internal.AuthorRecord {
	return internal.AuthorRecord{
		ID:        strings.TrimSpace(pick(columns, cells, "AuthorID")),
		FirstName: pick(columns, cells, "FirstName"),
		LastName:  pick(columns, cells, "LastName"),
	}
}
