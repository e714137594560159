// Package render draws game snapshots and the start menu into a
// core.Screen. It never touches game state directly.
package render

import (
	"math"

	"github.com/vovakirdan/cyberpath/internal/core"
)

// Box is a rectangle in screen cells with the origin at the top left.
type Box struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Viewport maps the Y-up world onto a block of screen cells.
type Viewport struct {
	Area           Box
	WorldW, WorldH float64
}

// NewViewport fits a world of the given size into area.
func NewViewport(area Box, worldW, worldH float64) Viewport {
	return Viewport{Area: area, WorldW: worldW, WorldH: worldH}
}

// Cell returns the screen cell covering world point p.
func (v Viewport) Cell(p core.Vec2) (x, y int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return v.Area.X, v.Area.Y
	}
	fx := p.X / v.WorldW * float64(v.Area.W)
	fy := (v.WorldH - p.Y) / v.WorldH * float64(v.Area.H)
	x = v.Area.X + int(math.Floor(fx))
	y = v.Area.Y + int(math.Floor(fy))
	return x, y
}

// Span returns the cells covered by a world rectangle, at least one cell in
// each direction.
func (v Viewport) Span(r core.Rect) Box {
	x0, y0 := v.Cell(core.V(r.X, r.Top()))
	x1, y1 := v.Cell(core.V(r.Right(), r.Y))
	return Box{X: x0, Y: y0, W: max(x1-x0, 1), H: max(y1-y0, 1)}
}

// Visible reports whether a cell lies inside the viewport area.
func (v Viewport) Visible(x, y int) bool {
	return v.Area.Contains(x, y)
}

// set draws only inside the viewport.
func (v Viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.Visible(x, y) {
		dst.Set(x, y, r, c)
	}
}

func (v Viewport) fill(dst *core.Screen, b Box, r rune, c core.Color) {
	for row := b.Y; row < b.Y+b.H; row++ {
		for col := b.X; col < b.X+b.W; col++ {
			v.set(dst, col, row, r, c)
		}
	}
}
