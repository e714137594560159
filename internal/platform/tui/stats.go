package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cyberpath/internal/progress"
)

// Stats layout constants
const (
	minWidthForSummary = 80 // Minimum width to show the summary sidebar
	summaryWidth       = 26
	maxRuns            = 50
)

type statsTab int

const (
	tabRecords statsTab = iota
	tabHistory
)

// StatsModel shows per-level records and, when available, recent runs.
type StatsModel struct {
	deps        *Deps
	record      progress.Record
	runs        []progress.Run
	runsErr     error
	tab         statsTab
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSummary bool
}

// NewStatsModel creates a new stats model.
func NewStatsModel(deps *Deps, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		deps:        deps,
		record:      deps.Store.Load(),
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSummary: width >= minWidthForSummary,
	}
	if deps.History != nil {
		m.runs, m.runsErr = deps.History.RecentRuns(maxRuns)
		if m.runsErr != nil {
			deps.Logger.Warn("cannot load run history", "err", m.runsErr)
		}
	}
	m.rebuild()
	return m
}

// rebuild recreates the table for the current tab and size.
func (m *StatsModel) rebuild() {
	var columns []table.Column
	var rows []table.Row

	switch m.tab {
	case tabHistory:
		columns = []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Coins", Width: 6},
			{Title: "Outcome", Width: 10},
			{Title: "Date", Width: 14},
		}
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", r.Level),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Coins),
				r.Outcome,
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	default:
		columns = []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Name", Width: 20},
			{Title: "Best", Width: 8},
		}
		for i := 1; i <= m.deps.Levels.Count(); i++ {
			name := "?"
			if lvl, err := m.deps.Levels.Level(i); err == nil {
				name = lvl.Name
			}
			if !m.record.Unlocked(i) {
				name += " (locked)"
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i),
				name,
				fmt.Sprintf("%d", m.record.Best(i)),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
}

// Update handles messages for the stats screen.
func (m *StatsModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return nil

		case key.Matches(msg, m.keys.NextTab):
			if m.deps.History != nil {
				m.tab = (m.tab + 1) % 2
				m.rebuild()
			}
			return nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSummary = m.width >= minWidthForSummary
		m.help.Width = msg.Width
		m.rebuild()
		return nil
	}

	m.table, cmd = m.table.Update(msg)
	return cmd
}

// View renders the stats screen.
func (m *StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "LEVEL RECORDS"
	if m.tab == tabHistory {
		title = "RECENT RUNS"
	}
	if m.deps.Player != "" {
		title += " - " + m.deps.Player
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := boxStyle.Render(m.tableContent())
	if m.showSummary {
		summary := boxStyle.Width(summaryWidth).Render(m.summary())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, summary, "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m *StatsModel) summary() string {
	r := m.record
	return strings.Join([]string{
		"Totals",
		strings.Repeat("-", summaryWidth-4),
		fmt.Sprintf("Score        %d", r.TotalScore),
		fmt.Sprintf("Coins        %d", r.TotalCoins),
		fmt.Sprintf("Games played %d", r.GamesPlayed),
		fmt.Sprintf("Games won    %d", r.GamesWon),
		fmt.Sprintf("Max level    %d", r.MaxLevelReached),
	}, "\n")
}

// tableContent renders the table or an empty message.
func (m *StatsModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.tab == tabHistory {
		if m.runsErr != nil {
			return emptyStyle.Render("Run history unavailable.")
		}
		if len(m.runs) == 0 {
			return emptyStyle.Render("No runs recorded yet.\nFinish a level to start the history!")
		}
	}
	return m.table.View()
}

// GoingBack returns true if user wants to go back to menu.
func (m *StatsModel) GoingBack() bool { return m.goingBack }

// Quitting returns true if user wants to quit entirely.
func (m *StatsModel) Quitting() bool { return m.quitting }

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
