// Package store owns the in-memory expense collection and its durable
// persistence. Every mutating operation validates first, persists through
// the configured Repository, and only then commits to memory, so a failed
// save leaves the collection at its last-known-good state.
package store

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"uscite/internal/core"
	"uscite/internal/log"
)

type Store struct {
	repo   Repository
	logger *log.Logger
	items  []core.Expense
}

func New(repo Repository, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Store{
		repo:   repo,
		logger: logger.WithComponent(log.ComponentStore),
	}
}

// Load reads the full collection from the repository. Missing backing data
// yields an empty collection. Every loaded record must pass validation;
// the first invalid one fails the whole load with a RecordError.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	for i, e := range items {
		if err := e.Validate(); err != nil {
			return &RecordError{Index: i, Err: err}
		}
	}
	s.items = items
	s.logger.InfoContext(ctx, "collection loaded", log.FieldCount, len(items))
	return nil
}

// Add validates the raw fields, appends the new expense and persists. A
// blank date defaults to today. On any failure nothing is mutated and the
// aggregated validation error is returned.
func (s *Store) Add(ctx context.Context, date, category, amount, description string) (core.Expense, error) {
	if strings.TrimSpace(date) == "" {
		date = core.Today().String()
	}
	e, err := core.NewExpense(date, category, amount, description)
	if err != nil {
		return core.Expense{}, err
	}

	next := append(s.snapshot(), e)
	if err := s.repo.Save(ctx, next); err != nil {
		return core.Expense{}, err
	}
	s.items = next

	s.logger.InfoContext(ctx, "expense added",
		log.FieldCategory, e.Category,
		log.FieldAmount, e.Amount.String(),
		log.FieldCount, len(s.items))
	return e, nil
}

// Edit replaces the record at position with a fully resolved replacement,
// validated exactly as Add validates. The record keeps its position.
func (s *Store) Edit(ctx context.Context, position int, date, category, amount, description string) (core.Expense, error) {
	if position < 0 || position >= len(s.items) {
		return core.Expense{}, ErrIndexOutOfRange
	}
	if strings.TrimSpace(date) == "" {
		date = core.Today().String()
	}
	e, err := core.NewExpense(date, category, amount, description)
	if err != nil {
		return core.Expense{}, err
	}

	next := s.snapshot()
	next[position] = e
	if err := s.repo.Save(ctx, next); err != nil {
		return core.Expense{}, err
	}
	s.items = next

	s.logger.InfoContext(ctx, "expense edited", log.FieldPosition, position)
	return e, nil
}

// Delete removes the record at position and persists.
func (s *Store) Delete(ctx context.Context, position int) error {
	if position < 0 || position >= len(s.items) {
		return ErrIndexOutOfRange
	}

	next := s.snapshot()
	next = append(next[:position], next[position+1:]...)
	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.items = next

	s.logger.InfoContext(ctx, "expense deleted",
		log.FieldPosition, position,
		log.FieldCount, len(s.items))
	return nil
}

// FilterByCategory returns the expenses matching the category,
// case-insensitively, as a fresh slice in collection order.
func (s *Store) FilterByCategory(category string) []core.Expense {
	var out []core.Expense
	for _, e := range s.items {
		if e.SameCategory(category) {
			out = append(out, e)
		}
	}
	return out
}

// SummaryByCategory maps each category, keyed by the original case of its
// first occurrence, to the exact sum of its amounts.
func (s *Store) SummaryByCategory() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, g := range core.SummarizeByCategory(s.items) {
		out[g.Name] = g.Amount
	}
	return out
}

// Summary returns the per-category aggregation in first-occurrence order.
func (s *Store) Summary() []core.CategoryAmount {
	return core.SummarizeByCategory(s.items)
}

// Total returns the exact sum of all amounts.
func (s *Store) Total() decimal.Decimal {
	return core.Sum(s.items)
}

// Expenses returns a snapshot copy of the collection for read-only
// consumers such as exporters and views.
func (s *Store) Expenses() []core.Expense {
	return s.snapshot()
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	return len(s.items)
}

// Close releases the underlying repository.
func (s *Store) Close() error {
	return s.repo.Close()
}

func (s *Store) snapshot() []core.Expense {
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out
}
