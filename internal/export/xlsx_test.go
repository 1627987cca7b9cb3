package export

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSpreadsheetExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	exporter := NewSpreadsheetExporter(nil)

	got, err := exporter.Export(context.Background(), sampleExpenses(t), path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	// Header, 2 data rows, blank spacer, total row.
	require.GreaterOrEqual(t, len(rows), 5)
	assert.Equal(t, []string{"Date", "Category", "Amount", "Description"}, rows[0])
	assert.Equal(t, "2024-01-15", rows[1][0])
	assert.Equal(t, "Food", rows[1][1])
	assert.Equal(t, "Transport", rows[2][1])

	// Total row sits two rows below the last data row.
	label, err := f.GetCellValue(SheetName, "C5")
	require.NoError(t, err)
	assert.Equal(t, "Total:", label)
	total, err := f.GetCellValue(SheetName, "D5")
	require.NoError(t, err)
	assert.Equal(t, "40.5", total)
}

func TestSpreadsheetExportHeaderStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	_, err := NewSpreadsheetExporter(nil).Export(context.Background(), sampleExpenses(t), path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold, "header font should be bold")
	assert.Equal(t, "center", style.Alignment.Horizontal)
}

func TestSpreadsheetExportColumnWidthCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	long := sampleExpenses(t)[:1]
	var desc string
	for i := 0; i < 20; i++ {
		desc += "very long "
	}
	long[0].Description = desc

	_, err := NewSpreadsheetExporter(nil).Export(context.Background(), long, path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	width, err := f.GetColWidth(SheetName, "D")
	require.NoError(t, err)
	assert.LessOrEqual(t, width, float64(maxColumnWidth))
}

func TestSpreadsheetExportEmptyCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	_, err := NewSpreadsheetExporter(nil).Export(context.Background(), nil, path)
	require.ErrorIs(t, err, ErrExportEmpty)
	assert.NoFileExists(t, path)
}
