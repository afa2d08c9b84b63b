package generatorimpl

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneCSVFiles(t *testing.T) {
	f := newFixture(t)
	dir := f.cfg.CFD.OutputDir

	oldCSV := filepath.Join(dir, "cfd_data_my-team_daily_20250101_000000.csv")
	freshCSV := filepath.Join(dir, "cfd_data_my-team_daily_20250828_000000.csv")
	notCSV := filepath.Join(dir, "notes.txt")

	for _, path := range []string{oldCSV, freshCSV, notCSV} {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	stale := time.Now().Add(-100 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(oldCSV, stale, stale))
	require.NoError(t, os.Chtimes(notCSV, stale, stale))

	deleted := f.impl.pruneCSVFiles(90 * 24 * time.Hour)

	assert.Equal(t, 1, deleted)
	assert.NoFileExists(t, oldCSV)
	assert.FileExists(t, freshCSV)
	// Only generated CSVs are touched, even when stale.
	assert.FileExists(t, notCSV)
}

func TestPruneCSVFilesMissingDir(t *testing.T) {
	f := newFixture(t)
	f.cfg.CFD.OutputDir = filepath.Join(f.cfg.CFD.OutputDir, "does-not-exist")

	assert.Equal(t, 0, f.impl.pruneCSVFiles(time.Hour))
}
