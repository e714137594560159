package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyberpath/internal/config"
	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/game"
	"github.com/vovakirdan/cyberpath/internal/render"
)

// GameModel runs one game: input mapping, the fixed-step simulation and
// drawing.
type GameModel struct {
	deps       *Deps
	game       *game.Game
	screen     *core.Screen
	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game and starts a run at level.
func NewGameModel(deps *Deps, level int) GameModel {
	g := game.New(game.Options{
		Config: deps.Config,
		Levels: deps.Levels,
		Store:  deps.Store,
		Logger: deps.Logger,
		Seed:   deps.Runtime.Seed,
	})
	g.Start(level)

	return GameModel{
		deps:       deps,
		game:       g,
		screen:     core.NewScreen(deps.Runtime.ScreenW, deps.Runtime.ScreenH),
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(),
		inputFrame: core.NewInputFrame(),
	}
}

// Update handles key input. Keys are collected into the input frame and
// applied on the next tick.
func (m *GameModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if keyMsg.String() == "ctrl+s" {
		m.saveScreenshot()
		return nil
	}

	action, isQuit := m.keyMapper.MapKey(keyMsg)
	if isQuit {
		m.quitting = true
		return nil
	}
	if action != core.ActionNone {
		m.holds.Press(action, time.Now(), &m.inputFrame)
	}
	return nil
}

// Tick advances the simulation by one fixed step.
func (m *GameModel) Tick(now time.Time) {
	m.holds.Expire(now, &m.inputFrame)

	res := m.game.Step(m.deps.Runtime.Delta(), m.inputFrame)
	m.inputFrame.Clear()

	if m.deps.Audio != nil {
		m.deps.Audio.PlayAll(res.Events)
	}
	if res.Changed {
		m.holds.Reset()
		m.deps.Logger.Debug("phase changed", "phase", res.Phase, "level", m.game.Level(), "score", m.game.Score())
	}
	if m.game.WantsMenu() {
		m.backToMenu = true
	}
}

// View renders the game.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Resize(m.deps.Runtime.ScreenW, m.deps.Runtime.ScreenH)
	render.Draw(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	render.Draw(m.screen, m.game.Snapshot())

	dir := filepath.Join(config.Dir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.game.Level(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
}

// Close releases per-game resources.
func (m *GameModel) Close() {
	m.holds.Reset()
}

// Game exposes the running game.
func (m *GameModel) Game() *game.Game { return m.game }

// Quitting returns true if user requested to quit entirely.
func (m *GameModel) Quitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m *GameModel) BackToMenu() bool { return m.backToMenu }
