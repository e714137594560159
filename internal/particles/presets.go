package particles

import (
	"math"

	"github.com/vovakirdan/cyberpath/internal/core"
)

// Palettes for each effect.
var (
	coinColors = []core.Color{
		core.RGB(255, 215, 0),
		core.RGB(255, 255, 100),
		core.RGB(255, 200, 50),
	}
	dustColors = []core.Color{
		core.RGB(150, 150, 180),
		core.RGB(120, 120, 150),
		core.RGB(180, 180, 200),
	}
	enemyHitColors = []core.Color{
		core.RGB(255, 100, 100),
		core.RGB(255, 150, 100),
		core.RGB(255, 100, 150),
	}
	hazardColors = []core.Color{
		core.RGB(255, 140, 0),
		core.RGB(255, 100, 50),
		core.RGB(255, 180, 50),
	}
	sparkleColors = []core.Color{
		core.RGB(255, 255, 255),
		core.RGB(200, 220, 255),
		core.RGB(255, 255, 200),
	}
	celebrationColors = []core.Color{
		core.RGB(100, 255, 100),
		core.RGB(100, 255, 200),
		core.RGB(200, 255, 100),
		core.RGB(255, 255, 100),
	}
)

// LifeRestoredColor is the colour of the extra-life burst.
var LifeRestoredColor = core.RGB(100, 255, 100)

// CoinPickup bursts gold around a collected coin.
func (e *Engine) CoinPickup(at core.Vec2) {
	e.Emit(Emission{
		Origin:   at,
		Color:    e.pick(coinColors),
		Count:    12,
		Speed:    3,
		Size:     4,
		Lifetime: 0.8,
		FadeOut:  true,
		Gravity:  0.5,
	})
}

// Jump kicks up dust under the feet; feet is the bottom centre of the player.
func (e *Engine) Jump(feet core.Vec2) {
	for i := 0; i < 3; i++ {
		e.Emit(Emission{
			Origin:   core.V(feet.X+e.uniform(-15, 15), feet.Y),
			Color:    dustColors[i%len(dustColors)],
			Count:    e.intn(2, 4),
			Speed:    e.uniform(1, 2),
			Size:     e.uniform(2, 4),
			Lifetime: e.uniform(0.3, 0.6),
			FadeOut:  true,
			Gravity:  0.3,
		})
	}
}

// Landing is a heavier dust cloud than Jump.
func (e *Engine) Landing(feet core.Vec2) {
	for i := 0; i < 5; i++ {
		e.Emit(Emission{
			Origin:   core.V(feet.X+e.uniform(-20, 20), feet.Y),
			Color:    dustColors[i%len(dustColors)],
			Count:    e.intn(3, 6),
			Speed:    e.uniform(1.5, 3),
			Size:     e.uniform(3, 6),
			Lifetime: e.uniform(0.4, 0.8),
			FadeOut:  true,
			Gravity:  0.8,
		})
	}
}

// EnemyHit marks contact with an enemy.
func (e *Engine) EnemyHit(at core.Vec2) {
	e.Emit(Emission{
		Origin:   at,
		Color:    e.pick(enemyHitColors),
		Count:    e.intn(8, 15),
		Speed:    e.uniform(2, 4),
		Size:     e.uniform(3, 5),
		Lifetime: e.uniform(0.5, 0.9),
		FadeOut:  true,
		Gravity:  0.7,
	})
}

// HazardHit marks contact with a hazard.
func (e *Engine) HazardHit(at core.Vec2) {
	e.Emit(Emission{
		Origin:   at,
		Color:    e.pick(hazardColors),
		Count:    e.intn(10, 20),
		Speed:    e.uniform(3, 6),
		Size:     e.uniform(2, 4),
		Lifetime: e.uniform(0.6, 1),
		FadeOut:  true,
		Gravity:  0.6,
	})
}

// Sparkle emits a single drifting speck 30% of the time.
func (e *Engine) Sparkle(at core.Vec2) {
	if e.rng.Float64() >= 0.3 {
		return
	}
	e.Emit(Emission{
		Origin:   at,
		Color:    e.pick(sparkleColors),
		Count:    1,
		Speed:    e.uniform(0.1, 0.5),
		Size:     e.uniform(1, 2),
		Lifetime: e.uniform(0.5, 1.5),
		FadeOut:  true,
		Gravity:  0.1,
	})
}

// SparkleAnywhere emits a sparkle at a random point of a w×h area.
func (e *Engine) SparkleAnywhere(w, h float64) {
	e.Sparkle(core.V(e.uniform(0, w), e.uniform(0, h)))
}

// LevelComplete fires a ring of 20 particles at evenly spaced angles.
// The ring ignores gravity.
func (e *Engine) LevelComplete(at core.Vec2) {
	const n = 20
	for i := 0; i < n; i++ {
		angle := float64(i) / n * 2 * math.Pi
		e.spawn(Emission{
			Origin:   at,
			Color:    celebrationColors[i%len(celebrationColors)],
			Size:     e.uniform(4, 8),
			Lifetime: e.uniform(1, 2),
			FadeOut:  true,
			Gravity:  0,
		}, angle, e.uniform(2, 5))
	}
}

// LifeRestored celebrates an extra life.
func (e *Engine) LifeRestored(at core.Vec2) {
	e.Emit(Emission{
		Origin:   at,
		Color:    LifeRestoredColor,
		Count:    15,
		Speed:    2,
		Size:     4,
		Lifetime: 1,
		FadeOut:  true,
		Gravity:  0.3,
	})
}
