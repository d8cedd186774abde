package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "state.json"))

	st, err := store.Load()
	require.NoError(t, err)
	assert.False(t, st.Indexed())
	assert.Empty(t, st.VectorStoreID)
	assert.Nil(t, st.LastIndexedAt())
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "state.json"))

	want := &State{
		VectorStoreID: "vs_123",
		AssistantID:   "asst_456",
		IndexedFiles:  []string{"a.pdf", "b.pdf"},
		LastIndexTime: 1700000000,
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Indexed())
	require.NotNil(t, got.LastIndexedAt())
	assert.Equal(t, int64(1700000000), got.LastIndexedAt().Unix())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.False(t, st.Indexed())
}

func TestSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "state.json"))

	require.NoError(t, store.Save(&State{VectorStoreID: "vs_old", IndexedFiles: []string{"old.pdf"}}))
	require.NoError(t, store.Save(&State{VectorStoreID: "vs_new", IndexedFiles: []string{"new.pdf"}}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "vs_new", got.VectorStoreID)
	assert.Equal(t, []string{"new.pdf"}, got.IndexedFiles)
}
