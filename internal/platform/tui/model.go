package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyberpath/internal/audio"
	"github.com/vovakirdan/cyberpath/internal/config"
	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/levels"
	"github.com/vovakirdan/cyberpath/internal/progress"
)

// RunHistory is implemented by stores that keep a log of finished runs.
type RunHistory interface {
	RecentRuns(limit int) ([]progress.Run, error)
}

// Deps are the collaborators shared by every screen of one player session.
type Deps struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Levels  levels.Source
	Store   progress.Store
	History RunHistory    // optional, enables the history tab
	Audio   *audio.Player // optional
	Logger  *log.Logger
	Reloads <-chan struct{} // optional level catalog change notifications
	Player  string          // shown in the menu, e.g. the SSH user
}

func (d *Deps) defaults() {
	if d.Levels == nil {
		d.Levels = levels.Builtin()
	}
	if d.Store == nil {
		d.Store = progress.NewMemoryStore()
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	if d.Runtime.TickRate <= 0 {
		d.Runtime.TickRate = 60
	}
	if d.Runtime.Seed == 0 {
		d.Runtime.Seed = time.Now().UnixNano()
	}
}

type screenID int

const (
	screenMenu screenID = iota
	screenGame
	screenStats
)

// levelsReloadedMsg reports that the level catalog changed on disk.
type levelsReloadedMsg struct{}

func waitForReload(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return levelsReloadedMsg{}
	}
}

// App manages the session flow: menu -> game -> menu, plus the stats
// screen. It owns the single tick loop and forwards ticks to the active
// screen. Used both locally and for SSH sessions.
type App struct {
	deps   *Deps
	active screenID
	menu   MenuModel
	game   *GameModel
	stats  *StatsModel
	width  int
	height int
	quit   bool
}

// NewApp creates the session model. startLevel > 0 skips the menu.
func NewApp(deps Deps, startLevel int) App {
	deps.defaults()
	d := &deps
	a := App{
		deps:   d,
		width:  d.Runtime.ScreenW,
		height: d.Runtime.ScreenH,
		menu:   NewMenuModel(d),
	}
	if startLevel > 0 {
		a.startGame(startLevel)
	}
	return a
}

// Init starts the tick loop.
func (a App) Init() tea.Cmd {
	return tea.Batch(tickCmd(a.deps.Runtime.TickRate), waitForReload(a.deps.Reloads))
}

// Update routes messages to the active screen and handles transitions.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.deps.Runtime.ScreenW, a.deps.Runtime.ScreenH = msg.Width, msg.Height

	case levelsReloadedMsg:
		a.deps.Logger.Info("level catalog reloaded", "levels", a.deps.Levels.Count())
		a.menu.Refresh()
		return a, waitForReload(a.deps.Reloads)

	case TickMsg:
		a.tick(time.Time(msg))
		if a.quit {
			return a, tea.Quit
		}
		return a, tickCmd(a.deps.Runtime.TickRate)
	}

	var cmd tea.Cmd
	switch a.active {
	case screenGame:
		cmd = a.game.Update(msg)
	case screenStats:
		cmd = a.stats.Update(msg)
	default:
		cmd = a.menu.Update(msg)
	}
	a.transition()
	if a.quit {
		return a, tea.Quit
	}
	return a, cmd
}

func (a *App) tick(now time.Time) {
	switch a.active {
	case screenGame:
		a.game.Tick(now)
	case screenMenu:
		a.menu.Tick()
	}
	a.transition()
}

// transition inspects the active screen for requests to switch.
func (a *App) transition() {
	switch a.active {
	case screenMenu:
		switch {
		case a.menu.Quitting():
			a.quit = true
		case a.menu.Selected() > 0:
			a.startGame(a.menu.Selected())
			a.menu.ClearSelection()
		case a.menu.WantsHistory():
			s := NewStatsModel(a.deps, a.width, a.height)
			a.stats = &s
			a.active = screenStats
			a.menu.ClearSelection()
		}

	case screenGame:
		switch {
		case a.game.Quitting():
			a.quit = true
		case a.game.BackToMenu():
			a.game.Close()
			a.game = nil
			a.active = screenMenu
			a.menu.Refresh()
		}

	case screenStats:
		switch {
		case a.stats.Quitting():
			a.quit = true
		case a.stats.GoingBack():
			a.stats = nil
			a.active = screenMenu
			a.menu.Refresh()
		}
	}
}

func (a *App) startGame(level int) {
	g := NewGameModel(a.deps, level)
	a.game = &g
	a.active = screenGame
}

// View renders the active screen.
func (a App) View() string {
	if a.quit {
		return ""
	}
	switch a.active {
	case screenGame:
		return a.game.View()
	case screenStats:
		return a.stats.View()
	default:
		return a.menu.View()
	}
}

// Run starts the Bubble Tea program on the local terminal.
// startLevel > 0 starts that level directly.
func Run(deps Deps, startLevel int) error {
	p := tea.NewProgram(
		NewApp(deps, startLevel),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Level cards are clickable
	)

	_, err := p.Run()
	return err
}
