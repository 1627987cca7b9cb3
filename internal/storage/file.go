package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"uscite/internal/core"
	"uscite/internal/log"
	"uscite/internal/store"
)

// BackupSuffix is appended to the backing path for the pre-save snapshot.
const BackupSuffix = ".backup"

// FileRepository persists the collection as a JSON array of field mappings
// in a single file. Saves go through a temp file and an atomic rename so a
// crash mid-save never leaves a truncated store behind.
type FileRepository struct {
	path   string
	logger *log.Logger
}

func NewFileRepository(path string, logger *log.Logger) *FileRepository {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &FileRepository{
		path:   path,
		logger: logger.WithComponent(log.ComponentStorage),
	}
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads and decodes the backing file. A missing file is an empty
// collection, not an error. An existing but empty file is also empty, with
// a warning. Undecodable content fails with ErrCorruptStore; a record with
// missing or mistyped fields fails with a RecordError wrapping
// ErrMalformedRecord.
func (r *FileRepository) Load(ctx context.Context) ([]core.Expense, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", store.ErrPersist, r.path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		r.logger.WarnContext(ctx, "expenses file exists but is empty", log.FieldPath, r.path)
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrCorruptStore, r.path, err)
	}

	expenses := make([]core.Expense, len(records))
	for i, rec := range records {
		e, err := core.ExpenseFromRecord(rec)
		if err != nil {
			return nil, &store.RecordError{Index: i, Err: err}
		}
		expenses[i] = e
	}
	return expenses, nil
}

// Save replaces the backing file with the serialized collection. The
// previous file, when present, is first copied to a .backup sibling;
// failure to back up is reported but does not block the save.
func (r *FileRepository) Save(ctx context.Context, expenses []core.Expense) error {
	records := make([]map[string]any, len(expenses))
	for i, e := range expenses {
		records[i] = e.Record()
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode expenses: %v", store.ErrPersist, err)
	}

	if dir := filepath.Dir(r.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: create directory %s: %v", store.ErrPersist, dir, err)
		}
	}

	if _, err := os.Stat(r.path); err == nil {
		if err := copyFile(r.path, r.path+BackupSuffix); err != nil {
			r.logger.WarnContext(ctx, "could not write backup copy",
				log.FieldPath, r.path+BackupSuffix, log.FieldError, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", store.ErrPersist, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", store.ErrPersist, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", store.ErrPersist, tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", store.ErrPersist, r.path, err)
	}

	r.logger.DebugContext(ctx, "collection saved",
		log.FieldPath, r.path, log.FieldCount, len(expenses))
	return nil
}

func (r *FileRepository) Close() error {
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
