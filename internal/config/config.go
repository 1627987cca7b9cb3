package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Backend names accepted by DATA_BACKEND.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	// Backend selection
	DataBackend string

	// File backend
	ExpensesFile string

	// SQLite backend
	SQLiteDBPath string

	// Export
	ExportDir          string
	SpreadsheetExport  bool
}

func Load() *Config {
	return &Config{
		DataBackend:       getEnv("DATA_BACKEND", BackendFile),
		ExpensesFile:      getEnv("EXPENSES_FILE", "expenses.json"),
		SQLiteDBPath:      getEnv("SQLITE_DB_PATH", "./data/uscite.db"),
		ExportDir:         getEnv("EXPORT_DIR", "."),
		SpreadsheetExport: getEnvBool("SPREADSHEET_EXPORT", true),
	}
}

// Validate checks the configuration, collecting every problem so the caller
// sees the full list at once.
func (c *Config) Validate() error {
	var errors []string

	switch c.DataBackend {
	case BackendFile:
		if c.ExpensesFile == "" {
			errors = append(errors, "expenses file path cannot be empty when using file backend")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s]", c.DataBackend, BackendFile, BackendSQLite))
	}

	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
