package table

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tsawler/readmetrics"
)

func sampleRows() []readmetrics.MetricsRow {
	return []readmetrics.MetricsRow{
		{
			ID: "blackassign0001", URL: "https://example.com/a",
			PositiveScore: 3, NegativeScore: 1,
			PolarityScore: 0.4999999, SubjectivityScore: 0.25,
			AvgSentenceLength: 12, PctComplexWords: 20.5, FogIndex: 13,
			AvgWordLength: 4.75, PersonalPronounCount: 2,
		},
		{ID: "blackassign0002", URL: "https://example.com/missing"},
	}
}

func TestReadCSV(t *testing.T) {
	input := "\xef\xbb\xbfurl_id,Title, URL \n1,First,https://example.com/a\n,,\n2,Second,\n,Orphan,\n3,Café,https://example.com/c\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []readmetrics.InputRow{
		{ID: "1", URL: "https://example.com/a"},
		{ID: "2", URL: ""},
		{ID: "", URL: ""},
		{ID: "3", URL: "https://example.com/c"},
	}, rows)
}

func TestReadCSVLatin1(t *testing.T) {
	rows, err := ReadCSV(bytes.NewReader([]byte("URL_ID,URL\ncaf\xe9,https://example.com\n")))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "café", rows[0].ID)
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("URL_ID,Link\n1,https://example.com\n"))
	assert.True(t, errors.Is(err, ErrMissingColumn))

	_, err = ReadCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestReadRowsUnsupported(t *testing.T) {
	_, err := ReadRows("input.json")
	assert.Error(t, err)

	_, err = ReadRows(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Input.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"URL_ID", "URL"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{123, "https://example.com/a"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"abc", "https://example.com/b"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := ReadRows(path)
	require.NoError(t, err)
	assert.Equal(t, []readmetrics.InputRow{
		{ID: "123", URL: "https://example.com/a"},
		{ID: "abc", URL: "https://example.com/b"},
	}, rows)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "URL_ID,URL,POSITIVE SCORE,NEGATIVE SCORE,POLARITY SCORE,SUBJECTIVITY SCORE,"+
		"AVG SENTENCE LENGTH,PERCENTAGE OF COMPLEX WORDS,FOG INDEX,AVG WORD LENGTH,PERSONAL PRONOUNS COUNT", lines[0])
	assert.Equal(t, "blackassign0001,https://example.com/a,3,1,0.4999999,0.25,12.0,20.5,13.0,4.75,2", lines[1])
	assert.Equal(t, "blackassign0002,https://example.com/missing,0,0,0.0,0.0,0.0,0.0,0.0,0.0,0", lines[2])
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.0", FormatFloat(0))
	assert.Equal(t, "40.8", FormatFloat(40.8))
	assert.Equal(t, "-0.999999000001", FormatFloat(-0.999999000001))
	assert.Equal(t, "7.0", FormatFloat(7))
}

func TestWriteFileFormats(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	csvPath := filepath.Join(dir, "output.csv")
	require.NoError(t, WriteFile(ctx, csvPath, "run", sampleRows()))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "URL_ID,URL,"))

	xlsxPath := filepath.Join(dir, "output.xlsx")
	require.NoError(t, WriteFile(ctx, xlsxPath, "run", sampleRows()))
	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, readmetrics.Columns, got[0])
	assert.Equal(t, "blackassign0002", got[2][0])
	assert.Equal(t, "2", got[1][10])
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.db")
	ctx := context.Background()

	require.NoError(t, WriteFile(ctx, path, "run-1", sampleRows()))
	// Writing the same run again replaces it.
	require.NoError(t, WriteFile(ctx, path, "run-1", sampleRows()))
	require.NoError(t, WriteFile(ctx, path, "run-2", sampleRows()[:1]))

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Rows(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), rows)

	rows, err = db.Rows(ctx, "run-2")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = db.Rows(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
