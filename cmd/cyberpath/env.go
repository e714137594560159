package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/cyberpath/internal/audio"
	"github.com/vovakirdan/cyberpath/internal/config"
	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/levels"
	"github.com/vovakirdan/cyberpath/internal/platform/tui"
	"github.com/vovakirdan/cyberpath/internal/progress"
)

// env holds everything a command needs, opened from the global flags.
type env struct {
	logger  *log.Logger
	cfg     config.Config
	levels  levels.Source
	watcher *levels.Watcher
	store   progress.Store
	db      *progress.SQLiteStore // nil when --save is used or the database failed
	audio   *audio.Player

	closers []io.Closer
}

// openEnv loads configuration, levels and the progress store. Problems with
// optional pieces are logged and replaced by in-memory fallbacks.
// interactive sends logs to a file so they do not tear the terminal UI.
func openEnv(interactive bool) (*env, error) {
	e := &env{}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	e.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cyberpath",
		Level:           level,
	})
	if interactive {
		e.redirectLogs()
	}

	e.cfg, err = config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&e.cfg, preset)

	if err := e.openLevels(); err != nil {
		e.Close()
		return nil, err
	}
	e.openStore()

	if flagSound {
		e.audio = audio.NewPlayer(0.6, e.logger)
		if err := e.audio.Init(); err != nil {
			e.logger.Warn("sound disabled", "err", err)
		}
	}
	return e, nil
}

// redirectLogs appends logs to ~/.cyberpath/cyberpath.log, falling back to
// stderr if the file cannot be opened.
func (e *env) redirectLogs() {
	dir := config.Dir()
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "cyberpath.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	e.logger.SetOutput(f)
	e.closers = append(e.closers, f)
}

func (e *env) openLevels() error {
	if flagLevels == "" {
		if flagWatch {
			e.logger.Warn("--watch has no effect without --levels")
		}
		e.levels = levels.Builtin()
		return nil
	}

	if flagWatch {
		w, err := levels.NewWatcher(flagLevels, e.logger)
		if err != nil {
			return err
		}
		e.watcher = w
		e.levels = w
		e.closers = append(e.closers, w)
		return nil
	}

	cat, err := levels.LoadDir(flagLevels)
	if err != nil {
		return err
	}
	e.levels = cat
	return nil
}

func (e *env) openStore() {
	if flagSavePath != "" {
		fs, err := progress.OpenFile(flagSavePath, e.logger)
		if err == nil {
			e.store = fs
			return
		}
		e.logger.Warn("could not open save file, progress will not persist", "err", err)
		e.store = progress.NewMemoryStore()
		return
	}

	db, err := progress.OpenSQLite(flagDBPath, e.logger)
	if err != nil {
		// Continue without storage - game still works
		e.logger.Warn("could not open progress database, progress will not persist", "err", err)
		e.store = progress.NewMemoryStore()
		return
	}
	e.db = db
	e.store = db
	e.closers = append(e.closers, db)
}

// deps builds the terminal UI collaborators.
func (e *env) deps() tui.Deps {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	d := tui.Deps{
		Config: e.cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Levels: e.levels,
		Store:  e.store,
		Audio:  e.audio,
		Logger: e.logger,
	}
	if e.db != nil {
		d.History = e.db
	}
	if e.watcher != nil {
		d.Reloads = e.watcher.Updates()
	}
	return d
}

// Close releases everything in reverse order of opening.
func (e *env) Close() error {
	if e.audio != nil {
		e.audio.Close()
	}
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}
