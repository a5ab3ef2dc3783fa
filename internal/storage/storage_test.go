package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	fileStore, err := Open(BackendFile, filepath.Join(dir, "files"))
	require.NoError(t, err)
	sqliteStore, err := Open(BackendSQLite, filepath.Join(dir, "db", "state.db"))
	require.NoError(t, err)

	stores := map[string]Store{
		BackendMemory: NewMemoryStore(),
		BackendFile:   fileStore,
		BackendSQLite: sqliteStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStoreGetSetRemove(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.GetItem("missing")
			require.NoError(t, err)
			assert.False(t, ok, "absent key should report not found")

			require.NoError(t, s.SetItem("selected", `["1","2"]`))
			v, ok, err := s.GetItem("selected")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["1","2"]`, v)

			require.NoError(t, s.SetItem("selected", `[]`))
			v, _, err = s.GetItem("selected")
			require.NoError(t, err)
			assert.Equal(t, `[]`, v, "set should overwrite")

			require.NoError(t, s.RemoveItem("selected"))
			_, ok, err = s.GetItem("selected")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.RemoveItem("selected"), "removing twice is fine")
		})
	}
}

func TestStoreRejectsPathLikeKeys(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../escape", `a\b`, ".."} {
				err := s.SetItem(key, "x")
				assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
			}
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.SetItem("options", `[{"id":"1","label":"Apple"}]`))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	v, ok, err := second.GetItem("options")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1","label":"Apple"}]`, v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files should not be left behind")
	assert.Equal(t, "options.json", entries[0].Name())
}

func TestSQLiteStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.SetItem("history", `["3"]`))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()
	v, ok, err := second.GetItem("history")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["3"]`, v)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNormalizeBackend(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", BackendFile},
		{"  ", BackendFile},
		{" file", BackendFile},
		{"SQLite ", BackendSQLite},
		{"Memory", BackendMemory},
		{"redis", "redis"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBackend(tt.in), "input %q", tt.in)
	}
}
