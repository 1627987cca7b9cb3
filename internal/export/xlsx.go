package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"uscite/internal/core"
	"uscite/internal/log"
	"uscite/internal/store"
)

// SheetName is the single sheet both the data and the total row live on.
const SheetName = "Expenses"

// maxColumnWidth caps auto-sized columns so one long description does not
// stretch the sheet.
const maxColumnWidth = 50

var sheetHeader = []string{"Date", "Category", "Amount", "Description"}

// SpreadsheetExporter writes the collection as a single-sheet workbook with
// a styled header and a trailing grand-total row.
type SpreadsheetExporter struct {
	logger *log.Logger
}

func NewSpreadsheetExporter(logger *log.Logger) *SpreadsheetExporter {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &SpreadsheetExporter{logger: logger}
}

// Export writes the workbook and returns the destination path. Same
// emptiness and I/O failure semantics as the CSV exporter.
func (e *SpreadsheetExporter) Export(ctx context.Context, expenses []core.Expense, path string) (string, error) {
	if len(expenses) == 0 {
		return "", ErrExportEmpty
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return "", fmt.Errorf("create header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return "", fmt.Errorf("create bold style: %w", err)
	}

	widths := make([]int, len(sheetHeader))
	for col, title := range sheetHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
		widths[col] = len(title)
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", headerStyle); err != nil {
		return "", fmt.Errorf("style header: %w", err)
	}

	for i, exp := range expenses {
		row := i + 2
		values := []any{
			exp.Date.String(),
			exp.Category,
			exp.Amount.InexactFloat64(),
			exp.Description,
		}
		display := []string{
			exp.Date.String(),
			exp.Category,
			exp.Amount.String(),
			exp.Description,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return "", fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return "", fmt.Errorf("write row %d: %w", row, err)
			}
			if n := len(display[col]); n > widths[col] {
				widths[col] = n
			}
		}
	}

	for col, width := range widths {
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return "", fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return "", fmt.Errorf("set column width: %w", err)
		}
	}

	// Total row sits two rows below the last data row: the label in the
	// amount column, the grand total in the one after it.
	totalRow := len(expenses) + 3
	labelCell, _ := excelize.CoordinatesToCellName(3, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	if err := f.SetCellValue(SheetName, labelCell, "Total:"); err != nil {
		return "", fmt.Errorf("write total label: %w", err)
	}
	if err := f.SetCellValue(SheetName, valueCell, core.Sum(expenses).InexactFloat64()); err != nil {
		return "", fmt.Errorf("write total value: %w", err)
	}
	if err := f.SetCellStyle(SheetName, labelCell, valueCell, boldStyle); err != nil {
		return "", fmt.Errorf("style total row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: save %s: %v", store.ErrPersist, path, err)
	}

	e.logger.InfoContext(ctx, "exported spreadsheet",
		log.FieldPath, path, log.FieldCount, len(expenses))
	return path, nil
}
