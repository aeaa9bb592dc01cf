package workbench

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typeout/recent"
)

const storeTimeout = 5 * time.Second

// document is the file currently shown in the editor.
type document struct {
	Name    string
	Path    string
	Content string
	Size    int64
}

type documentLoadedMsg struct {
	doc document
}

type loadFailedMsg struct {
	path string
	err  error
}

type historyLoadedMsg struct {
	entries []recent.Entry
	err     error
}

type historySavedMsg struct {
	err error
}

// readDocument reads path off the update loop. Line endings are normalised to
// LF and invalid UTF-8 is replaced so the engine sees clean code points.
func readDocument(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return loadFailedMsg{path: path, err: err}
		}
		return documentLoadedMsg{doc: document{
			Name:    filepath.Base(path),
			Path:    path,
			Content: normalizeText(string(data)),
			Size:    int64(len(data)),
		}}
	}
}

func normalizeText(s string) string {
	s = strings.ToValidUTF8(s, "�")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func loadHistory(store recent.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		entries, err := store.Load(ctx)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// historySaver serialises saves so that a slower, older save never
// overwrites a newer one.
type historySaver struct {
	store recent.Store

	scheduled atomic.Uint64

	mu      sync.Mutex
	written uint64
}

func (s *historySaver) save(entries []recent.Entry) tea.Cmd {
	seq := s.scheduled.Add(1)
	return func() tea.Msg {
		s.mu.Lock()
		defer s.mu.Unlock()
		if seq < s.written {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		err := s.store.Save(ctx, entries)
		s.written = seq
		return historySavedMsg{err: err}
	}
}
