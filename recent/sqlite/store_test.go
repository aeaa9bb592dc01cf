package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/typeout/recent"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	require.ErrorIs(t, err, recent.ErrNoPath)
}

func TestStore_EmptyLoad(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "recent.db"))
	entries, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_SaveLoadPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.db")
	s := openTestStore(t, path)
	ctx := context.Background()

	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	l := recent.NewList(nil, 3)
	l.Add("a.go", "package a", now)
	l.Add("b.md", "# b", now.Add(time.Minute))
	l.Add("a.go", "package a // v2", now.Add(2*time.Minute))
	require.NoError(t, s.Save(ctx, l.Entries()))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a.go", got[0].Name)
	assert.Equal(t, "package a // v2", got[0].Content)
	assert.Equal(t, "Local File: a.go", got[0].Path)
	assert.True(t, got[0].Timestamp.Equal(now.Add(2*time.Minute)))
	assert.Equal(t, "b.md", got[1].Name)

	// Saving again replaces the list.
	require.NoError(t, s.Save(ctx, got[1:]))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b.md", got[0].Name)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, []recent.Entry{{Name: "x.txt", Content: "x", Path: recent.DisplayPath("x.txt")}}))
	require.NoError(t, s.Close())

	s2 := openTestStore(t, path)
	got, err := s2.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "x.txt", got[0].Name)
}

func TestStore_CanceledContext(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "recent.db"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.Save(ctx, nil), context.Canceled)
}
