package table

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/readmetrics"
)

const sheetName = "Sheet1"

// WriteFile writes rows to path as CSV, XLSX or SQLite, chosen by extension.
// runID tags SQLite rows and is ignored by the other formats.
func WriteFile(ctx context.Context, path, runID string, rows []readmetrics.MetricsRow) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(path, rows)
	case ".db", ".sqlite", ".sqlite3":
		db, err := OpenSQLite(path)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.SaveRows(ctx, runID, rows)
	default:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := WriteCSV(f, rows); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
}

// WriteCSV writes a header and one record per row.
func WriteCSV(w io.Writer, rows []readmetrics.MetricsRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(readmetrics.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(formatRow(r)); err != nil {
			return fmt.Errorf("write row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteXLSX writes a header and one row per metrics row to a new workbook.
func WriteXLSX(path string, rows []readmetrics.MetricsRow) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(readmetrics.Columns))
	for i, c := range readmetrics.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := r.Values()
		if err := f.SetSheetRow(sheetName, axis, &values); err != nil {
			return fmt.Errorf("write row %s: %w", r.ID, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func formatRow(r readmetrics.MetricsRow) []string {
	vals := r.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case string:
			out[i] = x
		case int:
			out[i] = strconv.Itoa(x)
		case float64:
			out[i] = FormatFloat(x)
		}
	}
	return out
}

// FormatFloat renders f in its shortest round-trip form, keeping a ".0" on
// integral values so float columns stay recognisable.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
