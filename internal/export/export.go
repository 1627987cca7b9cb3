// Package export converts a snapshot of the expense collection into
// downstream file formats. Exporters never mutate the collection they are
// given.
package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"uscite/internal/core"
	"uscite/internal/log"
)

var (
	// ErrExportEmpty is returned when there are no records to export. No
	// output file is created in that case.
	ErrExportEmpty = errors.New("no expenses to export")
	// ErrCapabilityUnavailable is returned for spreadsheet export when the
	// capability was not enabled at configuration time.
	ErrCapabilityUnavailable = errors.New("spreadsheet export capability unavailable")
)

// Header is the fixed column order shared by both encoders.
var Header = []string{"date", "category", "amount", "description"}

// DefaultFilename synthesizes a collision-free destination name embedding
// the given timestamp.
func DefaultFilename(ext string, now time.Time) string {
	return fmt.Sprintf("expenses_export_%s%s", now.Format("20060102_150405"), ext)
}

// Service bundles the available exporters. The spreadsheet encoder is a
// configured capability; when absent, ExportSpreadsheet reports
// ErrCapabilityUnavailable instead of failing at call depth.
type Service struct {
	dir    string
	csv    *CSVExporter
	xlsx   *SpreadsheetExporter
	logger *log.Logger
}

// NewService creates a Service writing defaulted destinations into dir.
// spreadsheet controls whether the spreadsheet capability is wired.
func NewService(dir string, spreadsheet bool, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent(log.ComponentExport)

	s := &Service{
		dir:    dir,
		csv:    NewCSVExporter(logger),
		logger: logger,
	}
	if spreadsheet {
		s.xlsx = NewSpreadsheetExporter(logger)
	}
	return s
}

// SpreadsheetAvailable reports whether the spreadsheet capability is wired.
func (s *Service) SpreadsheetAvailable() bool {
	return s.xlsx != nil
}

// ExportCSV writes the snapshot as delimited text. A blank path gets a
// timestamped name inside the service's export directory.
func (s *Service) ExportCSV(ctx context.Context, expenses []core.Expense, path string) (string, error) {
	if path == "" {
		path = filepath.Join(s.dir, DefaultFilename(".csv", time.Now()))
	}
	return s.csv.Export(ctx, expenses, path)
}

// ExportSpreadsheet writes the snapshot as a styled workbook, if the
// capability is available.
func (s *Service) ExportSpreadsheet(ctx context.Context, expenses []core.Expense, path string) (string, error) {
	if s.xlsx == nil {
		return "", ErrCapabilityUnavailable
	}
	if path == "" {
		path = filepath.Join(s.dir, DefaultFilename(".xlsx", time.Now()))
	}
	return s.xlsx.Export(ctx, expenses, path)
}

// ExportAll runs every available encoder over the same snapshot
// concurrently and returns the written paths.
func (s *Service) ExportAll(ctx context.Context, expenses []core.Expense) ([]string, error) {
	if len(expenses) == 0 {
		return nil, ErrExportEmpty
	}

	paths := make([]string, 2)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.ExportCSV(ctx, expenses, "")
		paths[0] = p
		return err
	})
	if s.xlsx != nil {
		g.Go(func() error {
			p, err := s.ExportSpreadsheet(ctx, expenses, "")
			paths[1] = p
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, 2)
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
