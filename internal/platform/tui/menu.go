package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/particles"
	"github.com/vovakirdan/cyberpath/internal/progress"
	"github.com/vovakirdan/cyberpath/internal/render"
)

// menuSparkleInterval is how often the menu may add a sparkle.
const menuSparkleInterval = 0.5

// MenuModel is the start menu: level cards, statistics and progress reset.
type MenuModel struct {
	deps      *Deps
	screen    *core.Screen
	keyMapper *KeyMapper
	sparkles  *particles.Engine

	record    progress.Record
	cards     []render.LevelCard
	cursor    int
	showStats bool
	status    string

	sparkleTimer float64
	selected     int
	wantsHistory bool
	quitting     bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(deps *Deps) MenuModel {
	m := MenuModel{
		deps:      deps,
		screen:    core.NewScreen(deps.Runtime.ScreenW, deps.Runtime.ScreenH),
		keyMapper: NewKeyMapper(),
		sparkles:  particles.NewEngine(deps.Runtime.Seed+3, deps.Config.Effects.ParticleGravity),
	}
	m.Refresh()
	return m
}

// Refresh reloads progress and level cards, keeping the cursor on an
// unlocked level.
func (m *MenuModel) Refresh() {
	m.record = m.deps.Store.Load()
	m.cards = render.Cards(m.deps.Levels, m.record)
	m.cursor = min(m.cursor, max(len(m.cards)-1, 0))
	for m.cursor > 0 && m.cards[m.cursor].Locked {
		m.cursor--
	}
}

// Update handles input for the menu.
func (m *MenuModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return nil
}

func (m *MenuModel) handleKey(msg tea.KeyMsg) {
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.choose(int(s[0] - '0'))
		return
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.cards)-1 && !m.cards[m.cursor+1].Locked {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.cards) > 0 {
			m.choose(m.cards[m.cursor].Index)
		}
	case MenuActionToggleStats:
		m.showStats = !m.showStats
	case MenuActionHistory:
		m.wantsHistory = true
	case MenuActionReset:
		m.deps.Store.Reset()
		m.cursor = 0
		m.Refresh()
		m.status = "Progress reset"
		m.deps.Logger.Info("progress reset", "player", m.deps.Player)
	}
}

// handleMouse starts the level whose card was clicked.
func (m *MenuModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	boxes := render.CardBoxes(m.screen.Width(), m.screen.Height(), len(m.cards), m.showStats)
	for i, b := range boxes {
		if b.Contains(msg.X, msg.Y) {
			m.cursor = i
			m.choose(m.cards[i].Index)
			return
		}
	}
}

// choose selects a level if it is unlocked.
func (m *MenuModel) choose(level int) {
	for i, c := range m.cards {
		if c.Index != level {
			continue
		}
		m.cursor = i
		if c.Locked {
			m.status = "Level locked: finish the previous levels first"
			return
		}
		m.selected = level
		m.status = ""
		return
	}
}

// Tick animates the background sparkles.
func (m *MenuModel) Tick() {
	dt := m.deps.Runtime.Delta()
	m.sparkles.Advance(dt)
	m.sparkleTimer += dt
	if m.sparkleTimer >= menuSparkleInterval {
		m.sparkleTimer = 0
		w := m.deps.Config.World
		m.sparkles.SparkleAnywhere(w.Width, w.Height)
	}
}

// View renders the menu.
func (m *MenuModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Resize(m.deps.Runtime.ScreenW, m.deps.Runtime.ScreenH)
	render.Menu(m.screen, render.MenuView{
		Cards:     m.cards,
		Cursor:    m.cursor,
		Record:    m.record,
		ShowStats: m.showStats,
		Status:    m.status,
		Sparkles:  m.sparkles.Particles(),
		WorldW:    m.deps.Config.World.Width,
		WorldH:    m.deps.Config.World.Height,
	})
	return RenderScreen(m.screen)
}

// Selected returns the level to start, or 0.
func (m *MenuModel) Selected() int { return m.selected }

// WantsHistory reports whether the stats table was requested.
func (m *MenuModel) WantsHistory() bool { return m.wantsHistory }

// ClearSelection forgets a handled request.
func (m *MenuModel) ClearSelection() {
	m.selected = 0
	m.wantsHistory = false
}

// Quitting returns true if user requested to quit.
func (m *MenuModel) Quitting() bool { return m.quitting }
