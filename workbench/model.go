package workbench

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typeout/editor"
	"github.com/iw2rmb/typeout/recent"
)

type view int

const (
	viewWelcome view = iota
	viewPicker
	viewEditor
)

// chrome is the number of rows around the editor: tab bar, status bar, help.
const chrome = 3

// Options configures a workbench Model.
type Options struct {
	// Store persists the recent list. Defaults to an in-memory store.
	Store recent.Store
	// HistoryLimit caps the recent list. Defaults to recent.DefaultLimit.
	HistoryLimit int
	// StartDir is where the file picker opens. Defaults to the working directory.
	StartDir string
	// Open lists files to open once the program starts; the last one wins.
	Open []string

	Editor editor.Config
	KeyMap KeyMap
	Logger *slog.Logger
	Now    func() time.Time
}

// Model is the root Bubble Tea model.
type Model struct {
	opts   Options
	keys   KeyMap
	logger *slog.Logger
	now    func() time.Time

	history *recent.List
	saver   *historySaver

	view     view
	selected int

	doc    *document
	editor editor.Model
	picker filepicker.Model
	help   help.Model

	width, height int

	status    string
	statusErr bool
}

func New(opts Options) Model {
	if opts.Store == nil {
		opts.Store = recent.NewMemoryStore()
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = recent.DefaultLimit
	}
	if opts.StartDir == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.StartDir = wd
		}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	keys := opts.KeyMap
	if len(keys.Open.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	fp := filepicker.New()
	fp.CurrentDirectory = opts.StartDir
	fp.AutoHeight = true
	fp.ShowHidden = false

	return Model{
		opts:    opts,
		keys:    keys,
		logger:  opts.Logger,
		now:     opts.Now,
		history: recent.NewList(nil, opts.HistoryLimit),
		saver:   &historySaver{store: opts.Store},
		editor:  editor.New(opts.Editor),
		picker:  fp,
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadHistory(m.opts.Store)}
	for _, path := range m.opts.Open {
		cmds = append(cmds, readDocument(path))
	}
	return tea.Sequence(cmds...)
}

// History returns the current recent list, most recent first.
func (m Model) History() []recent.Entry { return m.history.Entries() }

// Editor returns the embedded editor component.
func (m Model) Editor() editor.Model { return m.editor }

// TabName is the label of the editor tab.
func (m Model) TabName() string {
	if m.doc == nil {
		return "Untitled"
	}
	return m.doc.Name
}

// Status returns the last status-bar message and whether it is an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) setStatus(msg string, isErr bool) Model {
	m.status, m.statusErr = msg, isErr
	return m
}

func (m Model) openDocument(doc document) Model {
	m.doc = &doc
	m.editor = m.editor.Load(doc.Content).Focus()
	m.view = viewEditor
	m.status, m.statusErr = "", false
	m.logger.Info("document opened", "name", doc.Name, "path", doc.Path, "runes", m.editor.Engine().Len())
	return m
}

func (m Model) closeDocument() Model {
	if m.doc != nil {
		m.logger.Info("document closed", "name", m.doc.Name)
	}
	m.doc = nil
	m.editor = m.editor.Close()
	m.view = viewWelcome
	return m
}

func (m Model) openPicker() (Model, tea.Cmd) {
	m.view = viewPicker
	return m, m.picker.Init()
}

func (m Model) resize() Model {
	m.editor = m.editor.SetSize(m.width, m.height-chrome)
	m.help.Width = m.width
	return m
}
