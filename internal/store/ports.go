package store

import (
	"context"
	"errors"
	"fmt"

	"uscite/internal/core"
)

// Repository persists the ordered expense collection. Save replaces the
// durable copy wholesale; partial writes must never become visible.
type Repository interface {
	Load(ctx context.Context) ([]core.Expense, error)
	Save(ctx context.Context, expenses []core.Expense) error
	Close() error
}

var (
	// ErrCorruptStore marks backing data that cannot be parsed at all.
	ErrCorruptStore = errors.New("corrupt store")
	// ErrPersist marks an I/O failure while writing the backing data.
	ErrPersist = errors.New("persist error")
	// ErrIndexOutOfRange marks a position outside the current collection.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// RecordError reports a persisted record that failed validation on load.
// Loading is all-or-nothing: one bad record refuses the whole store rather
// than silently dropping data.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
