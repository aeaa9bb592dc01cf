package recent

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore_RequiresPath(t *testing.T) {
	_, err := NewFileStore("")
	require.ErrorIs(t, err, ErrNoPath)
}

func TestFileStore_MissingFileLoadsEmpty(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "recent.json"))
	require.NoError(t, err)

	entries, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recent.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	l := NewList(nil, DefaultLimit)
	l.Add("main.go", "package main\n", now)
	l.Add("notes.md", "# notes", now.Add(time.Hour))
	require.NoError(t, s.Save(ctx, l.Entries()))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, l.Entries(), got)

	// The on-disk shape uses the original field names.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "notes.md", raw[0]["name"])
	assert.Equal(t, "Local File: notes.md", raw[0]["path"])
	assert.Contains(t, raw[0], "content")
	assert.Contains(t, raw[0], "timestamp")

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".tmp-recent-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStore_SaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileStore_CorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode recent file")
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(Entry{Name: "seed"})
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"seed"}, names(got))

	require.NoError(t, s.Save(ctx, []Entry{{Name: "a"}, {Name: "b"}}))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(got))
	require.NoError(t, s.Close())

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Load(canceled)
	require.ErrorIs(t, err, context.Canceled)
}
