// Package spawn places coins, enemies and hazards relative to a level's
// platforms when the level loads.
package spawn

import (
	"math"

	"github.com/vovakirdan/cyberpath/internal/core"
)

// Coin is a collectible. Collected only ever goes from false to true.
type Coin struct {
	Pos       core.Vec2 // rest position; the drawn coin bobs around it
	Collected bool
	Rotation  float64
	Bounce    float64
}

// Animated returns the bobbing position used for drawing and pickup.
func (c Coin) Animated(amplitude float64) core.Vec2 {
	return core.V(c.Pos.X, c.Pos.Y+math.Sin(c.Bounce)*amplitude)
}

// Enemy patrols horizontally and turns around at the screen edges.
type Enemy struct {
	Pos core.Vec2
	VX  float64
}

// Hazard is a static, animated obstacle.
type Hazard struct {
	Pos      core.Vec2
	Rotation float64
	Pulse    float64
}

// PulseScale returns the size multiplier of the pulsing animation.
func (h Hazard) PulseScale() float64 {
	return 1 + math.Sin(h.Pulse)*0.2
}
