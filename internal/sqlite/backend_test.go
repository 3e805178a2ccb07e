package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/stockroom/pkg/types"
)

// setupBackend creates an attached Backend over a temp data directory with
// a cleanup-deferred detach.
func setupBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackendLifecycle(t *testing.T) {
	t.Run("attach twice fails", func(t *testing.T) {
		b := setupBackend(t)
		err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrAlreadyAttached)
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		b := setupBackend(t)
		require.NoError(t, b.Detach())
		require.NoError(t, b.Detach())
	})

	t.Run("operations on detached backend fail", func(t *testing.T) {
		b := NewBackend()
		_, err := b.ScanAll()
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		assert.ErrorIs(t, b.InsertBatch(nil), types.ErrStoreDetached)
		assert.ErrorIs(t, b.DeleteByID("x"), types.ErrStoreDetached)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		b := NewBackend()
		err := b.Attach(types.Config{Backend: "postgres"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("catalog survives reattach", func(t *testing.T) {
		dataDir := t.TempDir()
		config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

		b := NewBackend()
		require.NoError(t, b.Attach(config))
		require.NoError(t, b.InsertBatch([]*types.Product{{Name: "Widget"}}))
		require.NoError(t, b.Detach())

		b2 := NewBackend()
		require.NoError(t, b2.Attach(config))
		defer b2.Detach()

		products, err := b2.ScanAll()
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget", products[0].Name)
	})
}
