package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"uscite/internal/core"
	"uscite/internal/log"
	"uscite/internal/store"
)

// SQLiteRepository persists the collection in a SQLite database. The schema
// is managed by embedded migrations. Save replaces the whole ordered
// collection in one transaction, matching the file repository's
// all-or-nothing contract.
type SQLiteRepository struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLiteRepository(dbPath string, logger *log.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:     db,
		logger: logger.WithComponent(log.ComponentStorage),
	}, nil
}

// Load reads the collection back in stored order. Amounts are persisted as
// exact decimal strings; a value that no longer parses fails the whole load.
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, category, amount, description FROM expenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: query expenses: %v", store.ErrCorruptStore, err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var rawDate, category, rawAmount, description string
		if err := rows.Scan(&rawDate, &category, &rawAmount, &description); err != nil {
			return nil, fmt.Errorf("%w: scan expense: %v", store.ErrCorruptStore, err)
		}

		i := len(expenses)
		date, err := core.ParseDate(rawDate)
		if err != nil {
			return nil, &store.RecordError{Index: i, Err: err}
		}
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return nil, &store.RecordError{
				Index: i,
				Err:   fmt.Errorf("%w: amount %q is not numeric", core.ErrMalformedRecord, rawAmount),
			}
		}

		expenses = append(expenses, core.Expense{
			Date:        date,
			Category:    category,
			Amount:      amount,
			Description: description,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate expenses: %v", store.ErrCorruptStore, err)
	}
	return expenses, nil
}

// Save replaces the stored collection with the given one in a single
// transaction.
func (r *SQLiteRepository) Save(ctx context.Context, expenses []core.Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", store.ErrPersist, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("%w: clear expenses: %v", store.ErrPersist, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (position, date, category, amount, description) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %v", store.ErrPersist, err)
	}
	defer stmt.Close()

	for i, e := range expenses {
		if _, err := stmt.ExecContext(ctx, i, e.Date.String(), e.Category, e.Amount.String(), e.Description); err != nil {
			return fmt.Errorf("%w: insert expense %d: %v", store.ErrPersist, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", store.ErrPersist, err)
	}

	r.logger.DebugContext(ctx, "collection saved", log.FieldCount, len(expenses))
	return nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
