package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DataBackend != BackendFile {
		t.Fatalf("default backend = %s, want %s", cfg.DataBackend, BackendFile)
	}
	if cfg.ExpensesFile != "expenses.json" {
		t.Fatalf("default expenses file = %s", cfg.ExpensesFile)
	}
	if !cfg.SpreadsheetExport {
		t.Fatal("spreadsheet export should be enabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", filepath.Join(t.TempDir(), "uscite.db"))
	t.Setenv("SPREADSHEET_EXPORT", "false")

	cfg := Load()
	if cfg.DataBackend != BackendSQLite {
		t.Fatalf("backend = %s, want sqlite", cfg.DataBackend)
	}
	if cfg.SpreadsheetExport {
		t.Fatal("spreadsheet export should be disabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		DataBackend: "carrier-pigeon",
		ExportDir:   "",
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "invalid data backend") {
		t.Fatalf("missing backend error: %s", msg)
	}
	if !strings.Contains(msg, "export directory") {
		t.Fatalf("missing export dir error: %s", msg)
	}
}

func TestValidateFileBackendNeedsPath(t *testing.T) {
	cfg := &Config{DataBackend: BackendFile, ExportDir: "."}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty expenses file path")
	}
}
