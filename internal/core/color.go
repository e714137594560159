package core

import "fmt"

// Color is a 24-bit RGB colour.
// The zero value means "terminal default" when a cell is rendered.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsZero reports whether c is the default colour.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex returns the colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale darkens (f < 1) or brightens (f > 1) the colour, saturating at 255.
func (c Color) Scale(f float64) Color {
	ch := func(v uint8) uint8 {
		return uint8(Clamp(float64(v)*f, 0, 255))
	}
	return Color{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

// Palette used by the game world and UI.
var (
	ColorDefault  = Color{}
	ColorWhite    = RGB(255, 255, 255)
	ColorGray     = RGB(150, 150, 150)
	ColorDimGray  = RGB(100, 100, 100)
	ColorYellow   = RGB(255, 255, 0)
	ColorGold     = RGB(255, 215, 0)
	ColorRed      = RGB(220, 60, 60)
	ColorGreen    = RGB(100, 255, 100)
	ColorCyan     = RGB(0, 200, 255)
	ColorOrange   = RGB(255, 140, 0)
	ColorSteel    = RGB(70, 130, 180)
	ColorPlatform = RGB(120, 120, 160)
)
