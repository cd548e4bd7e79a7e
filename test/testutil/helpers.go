// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/travelbanza/destination-catalog/internal/infrastructure/timeutil"
)

// ProjectRoot returns the absolute path of the repository root.
func ProjectRoot(t testing.TB) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// LoadFile loads a file relative to the repository root.
func LoadFile(t testing.TB, relPath string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(ProjectRoot(t), relPath))
	if err != nil {
		t.Fatalf("Failed to load file %s: %v", relPath, err)
	}
	return data
}

// WriteTempFile writes content to a file in a per-test temporary directory
// and returns its path.
func WriteTempFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t testing.TB, dateStr string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseDate(dateStr, time.UTC)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// DateFrom returns the UTC date days after clock's current day, formatted
// as YYYY-MM-DD. Negative days give past dates.
func DateFrom(clock timeutil.Clock, days int) string {
	return timeutil.NewCalendar(clock, time.UTC).DaysFromToday(days)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
