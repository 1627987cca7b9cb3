// Package services exposes the collaborator-facing expense tracking API.
// Presentation shells call into Tracker and render whatever comes back;
// they never bypass the store's validation.
package services

import (
	"context"

	"github.com/shopspring/decimal"

	"uscite/internal/core"
	"uscite/internal/export"
	"uscite/internal/store"
)

// Tracker orchestrates the record store and the export pipeline.
type Tracker struct {
	store   *store.Store
	exports *export.Service
}

func NewTracker(st *store.Store, exports *export.Service) *Tracker {
	return &Tracker{store: st, exports: exports}
}

func (t *Tracker) Add(ctx context.Context, date, category, amount, description string) (core.Expense, error) {
	return t.store.Add(ctx, date, category, amount, description)
}

func (t *Tracker) Edit(ctx context.Context, position int, date, category, amount, description string) (core.Expense, error) {
	return t.store.Edit(ctx, position, date, category, amount, description)
}

func (t *Tracker) Delete(ctx context.Context, position int) error {
	return t.store.Delete(ctx, position)
}

func (t *Tracker) Expenses() []core.Expense {
	return t.store.Expenses()
}

func (t *Tracker) FilterByCategory(category string) []core.Expense {
	return t.store.FilterByCategory(category)
}

func (t *Tracker) Summary() []core.CategoryAmount {
	return t.store.Summary()
}

func (t *Tracker) SummaryByCategory() map[string]decimal.Decimal {
	return t.store.SummaryByCategory()
}

func (t *Tracker) Total() decimal.Decimal {
	return t.store.Total()
}

func (t *Tracker) Len() int {
	return t.store.Len()
}

// ExportCSV writes the current collection snapshot as delimited text.
func (t *Tracker) ExportCSV(ctx context.Context, path string) (string, error) {
	return t.exports.ExportCSV(ctx, t.store.Expenses(), path)
}

// ExportSpreadsheet writes the current snapshot as a workbook, when the
// spreadsheet capability is configured.
func (t *Tracker) ExportSpreadsheet(ctx context.Context, path string) (string, error) {
	return t.exports.ExportSpreadsheet(ctx, t.store.Expenses(), path)
}

// ExportAll runs every available encoder over one shared snapshot.
func (t *Tracker) ExportAll(ctx context.Context) ([]string, error) {
	return t.exports.ExportAll(ctx, t.store.Expenses())
}

func (t *Tracker) SpreadsheetAvailable() bool {
	return t.exports.SpreadsheetAvailable()
}

func (t *Tracker) Close() error {
	return t.store.Close()
}
