package repository

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockkeeper/core/internal/domain/entities"
	"github.com/stockkeeper/core/internal/infrastructure/config"
	"github.com/stockkeeper/core/internal/infrastructure/logger"
	"github.com/stockkeeper/core/internal/ports"
)

func newTestRepository(t *testing.T) ports.LedgerRepository {
	t.Helper()

	lg, err := logger.New(config.LoggerConfig{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	return NewLedgerRepository(lg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	path := filepath.Join(t.TempDir(), "inventory.json")
	ctx := context.Background()

	ledger := entities.Ledger{"apple": 7, "banana": 12}
	require.NoError(t, repo.Save(ctx, path, ledger))

	loaded, err := repo.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, ledger, loaded)
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	repo := newTestRepository(t)
	path := filepath.Join(t.TempDir(), "inventory.json")

	require.NoError(t, repo.Save(context.Background(), path, entities.Ledger{"apple": 7}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"apple\": 7\n}", string(raw))
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	repo := newTestRepository(t)
	path := filepath.Join(t.TempDir(), "inventory.json")
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, path, entities.Ledger{"apple": 7, "banana": 1}))
	require.NoError(t, repo.Save(ctx, path, entities.Ledger{"pear": 3}))

	loaded, err := repo.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, entities.Ledger{"pear": 3}, loaded)
}

func TestSaveToUnwritablePath(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Save(context.Background(), t.TempDir(), entities.Ledger{"apple": 1})
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadMalformedDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Invalid JSON", content: `{"apple": `},
		{name: "Non-string key", content: `{"a": 1, "b": "x", 2: 3}`},
		{name: "Top-level array", content: `[1, 2, 3]`},
		{name: "Top-level number", content: `42`},
		{name: "Empty file", content: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t)
			path := filepath.Join(t.TempDir(), "inventory.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := repo.Load(context.Background(), path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFiltersMalformedEntries(t *testing.T) {
	repo := newTestRepository(t)
	path := filepath.Join(t.TempDir(), "inventory.json")

	content := `{
  "apple": 1,
  "string-value": "x",
  "bool-value": true,
  "null-value": null,
  "fractional": 2.5,
  "nested": {"q": 1},
  "negative": -3,
  "whole-float": 7.0,
  "overflowing": 1e300,
  "banana": 12
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, entities.Ledger{"apple": 1, "whole-float": 7, "banana": 12}, loaded)
}

func TestLoadLargeQuantities(t *testing.T) {
	repo := newTestRepository(t)
	path := filepath.Join(t.TempDir(), "inventory.json")

	// Whole floats and plain integers beyond 32 bits are both in range.
	content := `{"bulk": 3000000000, "bulk-float": 3000000000.0}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, entities.Ledger{"bulk": 3000000000, "bulk-float": 3000000000}, loaded)
}

func TestLoadEmptyObject(t *testing.T) {
	repo := newTestRepository(t)
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	loaded, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
