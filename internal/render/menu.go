package render

import (
	"fmt"

	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/levels"
	"github.com/vovakirdan/cyberpath/internal/particles"
	"github.com/vovakirdan/cyberpath/internal/progress"
)

// Menu layout.
const (
	menuTitle    = "C Y B E R P A T H"
	menuSubtitle = "Collect every coin before the clock runs out"
	menuHints    = "Up/Down: select  Enter: play  S: stats  T: history  Ctrl+R: reset  Q: quit"

	cardTop    = 5
	cardHeight = 3
	cardWidth  = 44
	statsWidth = 34
)

// LevelCard is one selectable level on the start menu.
type LevelCard struct {
	Index  int
	Name   string
	Best   int
	Locked bool
}

// MenuView is everything the start menu shows.
type MenuView struct {
	Cards     []LevelCard
	Cursor    int
	Record    progress.Record
	ShowStats bool
	Status    string // transient notice, e.g. after a progress reset

	Sparkles       []particles.Particle
	WorldW, WorldH float64
}

// Cards builds level cards from a catalog and a progress record. Levels
// past the furthest one reached are locked.
func Cards(src levels.Source, rec progress.Record) []LevelCard {
	cards := make([]LevelCard, 0, src.Count())
	for i := 1; i <= src.Count(); i++ {
		lvl, err := src.Level(i)
		if err != nil {
			continue
		}
		cards = append(cards, LevelCard{
			Index:  lvl.Index,
			Name:   lvl.Name,
			Best:   rec.Best(lvl.Index),
			Locked: !rec.Unlocked(lvl.Index),
		})
	}
	return cards
}

// CardBoxes returns the screen area of each level card, for drawing and
// for mouse hit-testing.
func CardBoxes(width, height, n int, showStats bool) []Box {
	w := min(cardWidth, max(width-4, 10))
	x := (width - w) / 2
	if showStats && width >= w+statsWidth+6 {
		x = (width - w - statsWidth - 2) / 2
	}

	boxes := make([]Box, 0, n)
	for i := 0; i < n; i++ {
		y := cardTop + i*cardHeight
		if y+cardHeight > height-1 {
			break
		}
		boxes = append(boxes, Box{X: x, Y: y, W: w, H: cardHeight})
	}
	return boxes
}

// Menu draws the start menu.
func Menu(dst *core.Screen, view MenuView) {
	dst.Clear()

	if len(view.Sparkles) > 0 {
		DrawParticles(dst, NewViewport(Box{W: dst.Width(), H: dst.Height()}, view.WorldW, view.WorldH), view.Sparkles)
	}

	dst.DrawTextCentered(1, menuTitle, core.ColorCyan)
	dst.DrawTextCentered(2, menuSubtitle, core.ColorGray)

	boxes := CardBoxes(dst.Width(), dst.Height(), len(view.Cards), view.ShowStats)
	for i, b := range boxes {
		drawCard(dst, b, view.Cards[i], i == view.Cursor)
	}

	if view.ShowStats {
		x := dst.Width() - statsWidth - 1
		if len(boxes) > 0 {
			x = min(x, boxes[0].X+boxes[0].W+2)
		}
		drawStats(dst, Box{X: x, Y: cardTop, W: statsWidth, H: 8 + len(view.Cards)}, view)
	}

	if view.Status != "" {
		dst.DrawTextCentered(dst.Height()-2, view.Status, core.ColorYellow)
	}
	dst.DrawTextCentered(dst.Height()-1, menuHints, core.ColorDimGray)
}

func drawCard(dst *core.Screen, b Box, card LevelCard, selected bool) {
	border := core.ColorDimGray
	if selected {
		border = core.ColorCyan
	}
	dst.DrawBox(b.X, b.Y, b.W, b.H, border)

	label := fmt.Sprintf("%d  %s", card.Index, card.Name)
	if selected {
		label = "> " + label
	} else {
		label = "  " + label
	}

	if card.Locked {
		dst.DrawText(b.X+2, b.Y+1, label, core.ColorDimGray)
		dst.DrawText(b.X+b.W-9, b.Y+1, "LOCKED", core.ColorDimGray)
		return
	}

	dst.DrawText(b.X+2, b.Y+1, label, core.ColorWhite)
	if card.Best > 0 {
		best := fmt.Sprintf("best %d", card.Best)
		dst.DrawText(b.X+b.W-len(best)-3, b.Y+1, best, core.ColorGold)
	}
}

func drawStats(dst *core.Screen, b Box, view MenuView) {
	dst.FillRect(b.X, b.Y, b.W, b.H, ' ', core.ColorDefault)
	dst.DrawBox(b.X, b.Y, b.W, b.H, core.ColorSteel)
	dst.DrawText(b.X+2, b.Y, " STATISTICS ", core.ColorCyan)

	rec := view.Record
	rows := []string{
		fmt.Sprintf("Total score   %d", rec.TotalScore),
		fmt.Sprintf("Total coins   %d", rec.TotalCoins),
		fmt.Sprintf("Games played  %d", rec.GamesPlayed),
		fmt.Sprintf("Games won     %d", rec.GamesWon),
		fmt.Sprintf("Max level     %d", rec.MaxLevelReached),
	}
	for _, c := range view.Cards {
		rows = append(rows, fmt.Sprintf("L%d best      %d", c.Index, c.Best))
	}

	for i, r := range rows {
		if i+1 >= b.H-1 {
			break
		}
		dst.DrawText(b.X+2, b.Y+1+i, r, core.ColorWhite)
	}
}
