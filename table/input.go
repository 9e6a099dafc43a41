// Package table reads input URL rows and writes metrics rows as CSV, XLSX
// or SQLite.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/readmetrics"
)

// Input column names.
const (
	IDColumn  = "URL_ID"
	URLColumn = "URL"
)

// ErrMissingColumn is returned when the header lacks URL_ID or URL.
var ErrMissingColumn = errors.New("missing column")

// ReadRows reads input rows from a .xlsx or .csv file, choosing the format by
// extension. Every data row yields one input row, even one whose URL_ID and
// URL are both blank; only records with no value in any column are dropped.
func ReadRows(path string) ([]readmetrics.InputRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	case ".csv", ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return ReadCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported input format %q", filepath.Ext(path))
	}
}

// ReadCSV reads input rows from CSV. Text that is not UTF-8 is decoded as
// Latin-1.
func ReadCSV(r io.Reader) ([]readmetrics.InputRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	text, err := readmetrics.DecodeText(data, charmap.ISO8859_1)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return fromRecords(records)
}

// ReadXLSX reads input rows from the first sheet of a workbook.
func ReadXLSX(path string) ([]readmetrics.InputRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return fromRecords(records)
}

// fromRecords maps a header row plus data rows to input rows. Records blank in
// every column are skipped; rows with a blank URL_ID or URL are kept.
func fromRecords(records [][]string) ([]readmetrics.InputRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}

	idCol, urlCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case IDColumn:
			idCol = i
		case URLColumn:
			urlCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, IDColumn)
	}
	if urlCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, URLColumn)
	}

	rows := make([]readmetrics.InputRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blankRecord(rec) {
			continue
		}
		rows = append(rows, readmetrics.InputRow{ID: cell(rec, idCol), URL: cell(rec, urlCol)})
	}
	return rows, nil
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
