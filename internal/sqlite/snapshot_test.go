package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/stockroom/pkg/types"
)

func TestExportJSONL(t *testing.T) {
	b := setupBackend(t)

	batch := []*types.Product{
		{Name: "alpha", Country: "Canada", Price: 10},
		{Name: "beta", Country: "Germany", Price: 20},
	}
	require.NoError(t, b.InsertBatch(batch))

	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	require.NoError(t, b.ExportJSONL(path))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, "beta", got[1].Name)
	assert.Equal(t, float64(20), got[1].Price)

	// No temp files left behind by the atomic write.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestExportJSONLEmptyCatalog(t *testing.T) {
	b := setupBackend(t)

	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	require.NoError(t, b.ExportJSONL(path))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadSnapshotSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	content := `{"id":"1","name":"good"}
not json at all

{"id":"2","name":"also good"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "good", got[0].Name)
	assert.Equal(t, "also good", got[1].Name)
}
