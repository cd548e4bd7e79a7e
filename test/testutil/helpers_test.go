package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbanza/destination-catalog/internal/infrastructure/timeutil"
)

func TestProjectRoot(t *testing.T) {
	root := ProjectRoot(t)

	_, err := os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err, "project root should contain go.mod")
}

func TestLoadFile(t *testing.T) {
	data := LoadFile(t, filepath.Join("internal", "catalog", "data", "destinations.yaml"))

	assert.Contains(t, string(data), "santorini")
}

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "catalog.yaml", "destinations: []\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "destinations: []\n", string(data))
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		dateStr string
		want    time.Time
	}{
		{"2026-03-14", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.dateStr, func(t *testing.T) {
			assert.True(t, tt.want.Equal(MustParseDate(t, tt.dateStr)))
		})
	}
}

func TestDateFrom(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, "2027-01-01", DateFrom(clock, 1))
	assert.Equal(t, "2026-12-30", DateFrom(clock, -1))
	assert.Equal(t, "2026-12-31", DateFrom(clock, 0))
}

func TestPtr(t *testing.T) {
	s := Ptr("bali")
	require.NotNil(t, s)
	assert.Equal(t, "bali", *s)

	f := Ptr(180.0)
	assert.Equal(t, 180.0, *f)
}
