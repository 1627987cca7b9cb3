package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"uscite/internal/core"
	"uscite/internal/log"
	"uscite/internal/store"
)

// CSVExporter writes the collection as UTF-8 comma-delimited text with a
// header row. Quoting follows RFC 4180: fields containing the delimiter,
// quotes or line breaks are quoted, embedded quotes doubled.
type CSVExporter struct {
	logger *log.Logger
}

func NewCSVExporter(logger *log.Logger) *CSVExporter {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &CSVExporter{logger: logger}
}

// Export writes one header row plus one row per record in collection order
// and returns the destination path. An empty snapshot fails with
// ErrExportEmpty before any file is created.
func (e *CSVExporter) Export(ctx context.Context, expenses []core.Expense, path string) (string, error) {
	if len(expenses) == 0 {
		return "", ErrExportEmpty
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %v", store.ErrPersist, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("%w: write header: %v", store.ErrPersist, err)
	}
	for _, exp := range expenses {
		record := []string{
			exp.Date.String(),
			exp.Category,
			exp.Amount.String(),
			exp.Description,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("%w: write record: %v", store.ErrPersist, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%w: flush %s: %v", store.ErrPersist, path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %v", store.ErrPersist, path, err)
	}

	e.logger.InfoContext(ctx, "exported csv",
		log.FieldPath, path, log.FieldCount, len(expenses))
	return path, nil
}
