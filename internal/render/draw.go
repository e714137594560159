package render

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/game"
	"github.com/vovakirdan/cyberpath/internal/particles"
	"github.com/vovakirdan/cyberpath/internal/spawn"
)

// Glyphs used for the world.
const (
	PlatformChar = '█'
	GroundChar   = '▀'
	PlayerChar   = '█'
	EnemyChar    = '▓'
	HazardChar   = '▲'
	BackdropChar = '·'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
)

var coinFrames = []rune{'O', '0', '|', '0'}

// hudRows is the number of rows reserved above the world.
const hudRows = 1

// lowTime turns the timer red.
const lowTime = 10.0

// WorldViewport returns the viewport Draw uses for a screen of the given
// size: the whole screen below the HUD row.
func WorldViewport(width, height int, worldW, worldH float64) Viewport {
	return NewViewport(Box{X: 0, Y: hudRows, W: width, H: max(height-hudRows, 0)}, worldW, worldH)
}

// Draw renders one frame of the game.
func Draw(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()
	vp := WorldViewport(dst.Width(), dst.Height(), snap.Config.World.Width, snap.Config.World.Height)

	drawBackdrop(dst, vp, snap.Background)

	for i, p := range snap.Platforms {
		if i == 0 {
			vp.fill(dst, vp.Span(p), GroundChar, core.ColorSteel)
			continue
		}
		vp.fill(dst, vp.Span(p), PlatformChar, core.ColorPlatform)
	}

	for _, h := range snap.Hazards {
		drawHazard(dst, vp, snap, h)
	}
	for _, c := range snap.Coins {
		drawCoin(dst, vp, c)
	}
	for _, e := range snap.Enemies {
		size := snap.Config.Enemy.Size
		vp.fill(dst, vp.Span(core.RectAround(e.Pos, size, size)), EnemyChar, core.ColorRed)
	}

	if snap.Phase == game.PhaseActive {
		size := snap.Config.Player.Size
		vp.fill(dst, vp.Span(core.RectAround(snap.Player.Pos, size, size)), PlayerChar, core.ColorCyan)
	}

	DrawParticles(dst, vp, snap.Particles)
	drawHUD(dst, snap)

	switch snap.Phase {
	case game.PhaseLevelComplete:
		lines := []string{fmt.Sprintf("Score: %d", snap.Score)}
		if snap.NextLevelName != "" {
			lines = append(lines, "Next: "+snap.NextLevelName)
			if snap.Lives < snap.MaxLives {
				lines = append(lines, "An extra life awaits")
			}
		} else {
			lines = append(lines, "All levels complete!")
		}
		lines = append(lines, "", "Enter: continue  Esc: menu")
		drawMessage(dst, "LEVEL COMPLETE", core.ColorGreen, lines)

	case game.PhaseGameOver:
		drawMessage(dst, "GAME OVER", core.ColorRed, []string{
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Level %d best: %d", snap.Level, snap.BestScore),
			"",
			"Enter: play again  Esc: menu",
		})

	case game.PhaseVictory:
		drawMessage(dst, "VICTORY", core.ColorGold, []string{
			"All levels complete!",
			fmt.Sprintf("Final score: %d", snap.Score),
			"",
			"Enter: play again  Esc: menu",
		})
	}
}

func drawBackdrop(dst *core.Screen, vp Viewport, bg core.Color) {
	if bg.IsZero() {
		return
	}
	dot := bg.Scale(1.8)
	for y := vp.Area.Y; y < vp.Area.Y+vp.Area.H; y += 3 {
		for x := vp.Area.X + (y % 6); x < vp.Area.X+vp.Area.W; x += 6 {
			dst.Set(x, y, BackdropChar, dot)
		}
	}
}

func drawCoin(dst *core.Screen, vp Viewport, c spawn.Coin) {
	x, y := vp.Cell(c.Pos)
	frame := int(math.Floor(c.Rotation*2)) % len(coinFrames)
	if frame < 0 {
		frame += len(coinFrames)
	}
	vp.set(dst, x, y, coinFrames[frame], core.ColorGold)
}

func drawHazard(dst *core.Screen, vp Viewport, snap game.Snapshot, h spawn.Hazard) {
	scale := h.PulseScale()
	w := snap.Config.Hazard.Width * scale
	hh := snap.Config.Hazard.Height * scale
	c := core.ColorOrange
	if scale > 1.1 {
		c = core.ColorRed
	}
	vp.fill(dst, vp.Span(core.RectAround(h.Pos, w, hh)), HazardChar, c)
}

// DrawParticles plots particles as single cells, picking a glyph by size
// and fading the colour with alpha.
func DrawParticles(dst *core.Screen, vp Viewport, ps []particles.Particle) {
	for _, p := range ps {
		x, y := vp.Cell(p.Pos)
		a := p.Alpha()
		if a <= 0 {
			continue
		}
		vp.set(dst, x, y, particleGlyph(p.Size, a), p.Color.Scale(0.4+0.6*a))
	}
}

func particleGlyph(size, alpha float64) rune {
	switch {
	case alpha < 0.3:
		return '.'
	case size >= 5:
		return '*'
	case size >= 3:
		return '+'
	default:
		return '.'
	}
}

func drawHUD(dst *core.Screen, snap game.Snapshot) {
	if snap.Phase == game.PhaseVictory {
		dst.DrawText(1, 0, fmt.Sprintf("SCORE %d", snap.Score), core.ColorWhite)
		return
	}

	x := 1
	put := func(s string, c core.Color) {
		dst.DrawText(x, 0, s, c)
		x += utf8.RuneCountInString(s) + 2
	}

	put(fmt.Sprintf("L%d %s", snap.Level, snap.LevelName), core.ColorCyan)
	put(fmt.Sprintf("SCORE %d", snap.Score), core.ColorWhite)
	put(fmt.Sprintf("COINS %d/%d", snap.CoinsCollected, snap.TotalCoins), core.ColorGold)

	timeColor := core.ColorWhite
	if snap.TimeRemaining < lowTime {
		timeColor = core.ColorRed
	}
	put(fmt.Sprintf("TIME %.1f", snap.TimeRemaining), timeColor)

	hearts := strings.Repeat(string(HeartFull), snap.Lives) +
		strings.Repeat(string(HeartEmpty), max(snap.MaxLives-snap.Lives, 0))
	put(hearts, core.ColorRed)

	if snap.LifeRestored {
		put("+1 LIFE", core.ColorGreen)
	}
}

// drawMessage draws a boxed message in the center of the screen.
func drawMessage(dst *core.Screen, title string, titleColor core.Color, lines []string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 6
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	center := func(y int, s string, c core.Color) {
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(s))/2, y, s, c)
	}
	center(boxY+1, title, titleColor)
	for i, l := range lines {
		center(boxY+3+i, l, core.ColorGray)
	}
}
