// Command typeout opens files in a mock editor that reveals them one
// character per keystroke.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typeout"
	"github.com/iw2rmb/typeout/editor"
	"github.com/iw2rmb/typeout/internal/config"
	"github.com/iw2rmb/typeout/internal/logging"
	"github.com/iw2rmb/typeout/recent"
	"github.com/iw2rmb/typeout/recent/sqlite"
	"github.com/iw2rmb/typeout/workbench"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	history  string
	backend  string
	dir      string
	logFile  string
	logLevel string
	version  bool
	files    []string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("typeout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.history, "history", "", "Path of the recent-files store")
	fs.StringVar(&f.backend, "backend", "", "Recent-files backend (json, sqlite, memory)")
	fs.StringVar(&f.dir, "dir", "", "Directory the file picker starts in")
	fs.StringVar(&f.logFile, "log", "", "Write logs to this file")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&f.version, "version", false, "Show version information")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: typeout [options] [files...]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	f.files = fs.Args()
	return f, nil
}

// apply overrides environment settings with the flags that were set.
func (f flags) apply(cfg config.Config) config.Config {
	if f.history != "" {
		cfg.HistoryPath = f.history
	}
	if f.backend != "" {
		cfg.HistoryBackend = strings.ToLower(strings.TrimSpace(f.backend))
	}
	if f.dir != "" {
		cfg.StartDir = f.dir
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg
}

func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if f.version {
		fmt.Fprintf(stdout, "typeout %s\n", typeout.VersionTag())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	cfg = f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	cfg, err = cfg.ResolveHistoryPath()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = closeLog() }()

	store, err := openStore(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing recent store", "error", err)
		}
	}()

	logger.Info("starting", "version", typeout.Version(), "backend", cfg.HistoryBackend, "history", cfg.HistoryPath)

	style := editor.DefaultStyle()
	m := workbench.New(workbench.Options{
		Store:        store,
		HistoryLimit: cfg.HistoryLimit,
		StartDir:     cfg.StartDir,
		Open:         f.files,
		Logger:       logger,
		Editor: editor.Config{
			ShowLineNums: cfg.ShowLineNumbers,
			TabWidth:     cfg.TabWidth,
			Style:        style,
			OnChange: func(ev editor.ChangeEvent) {
				logger.Debug("reveal", "version", ev.Version, "revealed", ev.Revealed, "total", ev.Total)
			},
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func openStore(ctx context.Context, cfg config.Config) (recent.Store, error) {
	switch cfg.HistoryBackend {
	case config.BackendSQLite:
		return sqlite.Open(ctx, cfg.HistoryPath)
	case config.BackendMemory:
		return recent.NewMemoryStore(), nil
	default:
		return recent.NewFileStore(cfg.HistoryPath)
	}
}
