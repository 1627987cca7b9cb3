package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"uscite/internal/core"
	"uscite/internal/storage"
	"uscite/internal/store"
)

// Round-trip fidelity: what one Store adds, a fresh Store on the same path
// loads back equivalent.
func TestAddThenLoadFreshStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	ctx := context.Background()

	first := store.New(storage.NewFileRepository(path, nil), nil)
	if err := first.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	want, err := first.Add(ctx, "2024-01-15", "Food", "25.50", `a, "b", c`)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := first.Add(ctx, "2024-01-16", "Transport", "15.00", "Bus fare"); err != nil {
		t.Fatalf("add: %v", err)
	}

	second := store.New(storage.NewFileRepository(path, nil), nil)
	if err := second.Load(ctx); err != nil {
		t.Fatalf("fresh load: %v", err)
	}
	if second.Len() != 2 {
		t.Fatalf("fresh store has %d records, want 2", second.Len())
	}
	got := second.Expenses()[0]
	if got.Date != want.Date || got.Category != want.Category || got.Description != want.Description {
		t.Fatalf("round trip changed fields: got %+v, want %+v", got, want)
	}
	if !got.Amount.Equal(want.Amount) {
		t.Fatalf("round trip changed amount: %s", got.Amount)
	}
	if got := second.Total(); got.String() != "40.5" {
		t.Fatalf("total = %s, want 40.5", got)
	}
}

func TestDeletePersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	ctx := context.Background()

	s := store.New(storage.NewFileRepository(path, nil), nil)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, d := range []string{"one", "two", "three"} {
		if _, err := s.Add(ctx, "2024-01-15", "Food", "10", d); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	fresh := store.New(storage.NewFileRepository(path, nil), nil)
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("fresh load: %v", err)
	}
	got := fresh.Expenses()
	if len(got) != 2 || got[0].Description != "one" || got[1].Description != "three" {
		t.Fatalf("unexpected records after restart: %+v", got)
	}
}

func TestLoadRefusesStoreWithMissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	ctx := context.Background()

	writeFile(t, path, `[{"date": "2024-01-15", "amount": 25.50, "description": "Lunch"}]`)

	s := store.New(storage.NewFileRepository(path, nil), nil)
	err := s.Load(ctx)
	if !errors.Is(err, core.ErrMalformedRecord) {
		t.Fatalf("want ErrMalformedRecord, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("store must stay empty after refused load")
	}
}

func TestLoadRefusesStoreWithInvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	ctx := context.Background()

	// Well-formed record, invalid value: zero amount.
	writeFile(t, path, `[{"date": "2024-01-15", "category": "Food", "amount": 0, "description": "Lunch"}]`)

	s := store.New(storage.NewFileRepository(path, nil), nil)
	err := s.Load(ctx)

	var recErr *store.RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("want RecordError, got %v", err)
	}
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount cause, got %v", err)
	}
}

func TestSQLiteBackedStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "uscite.db")
	ctx := context.Background()

	repo, err := storage.NewSQLiteRepository(dbPath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s := store.New(repo, nil)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := s.Add(ctx, "2024-01-15", "Food", "25.50", "Lunch"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	repo2, err := storage.NewSQLiteRepository(dbPath, nil)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	fresh := store.New(repo2, nil)
	defer fresh.Close()
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("fresh load: %v", err)
	}
	if fresh.Len() != 1 || fresh.Expenses()[0].Category != "Food" {
		t.Fatalf("unexpected records: %+v", fresh.Expenses())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
