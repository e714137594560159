// Package particles implements the cosmetic particle system that gives
// visual feedback for gameplay events.
package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cyberpath/internal/core"
)

// ReferenceFPS is the frame rate the per-frame velocity constants are tuned for.
const ReferenceFPS = 60

// Particle is a single short-lived point.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2 // world units per reference frame
	Color    core.Color
	Size     float64
	Lifetime float64
	Age      float64
	FadeOut  bool
	Gravity  float64 // scales the engine gravity
}

// Alpha returns the remaining opacity in [0, 1].
func (p Particle) Alpha() float64 {
	if !p.FadeOut || p.Lifetime <= 0 {
		return 1
	}
	return core.Clamp(1-p.Age/p.Lifetime, 0, 1)
}

// Emission parameterises one burst. Speed, Size and Lifetime are base
// values that every particle jitters around.
type Emission struct {
	Origin   core.Vec2
	Color    core.Color
	Count    int
	Speed    float64
	Size     float64
	Lifetime float64
	FadeOut  bool
	Gravity  float64
}

// Engine owns every live particle.
// It is not safe for concurrent use; the simulation tick is its only caller.
type Engine struct {
	particles []Particle
	rng       *rand.Rand
	gravity   float64
}

// NewEngine creates an engine with the given seed and world gravity.
func NewEngine(seed int64, gravity float64) *Engine {
	return &Engine{
		rng:     rand.New(rand.NewSource(seed)),
		gravity: gravity,
	}
}

// Emit spawns e.Count particles flying in uniformly random directions.
func (e *Engine) Emit(em Emission) {
	for i := 0; i < em.Count; i++ {
		angle := e.uniform(0, 2*math.Pi)
		e.spawn(em, angle, em.Speed*e.uniform(0.5, 1.5))
	}
}

// spawn appends one particle travelling at the given angle and speed.
func (e *Engine) spawn(em Emission, angle, speed float64) {
	e.particles = append(e.particles, Particle{
		Pos:      em.Origin,
		Vel:      core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
		Color:    em.Color,
		Size:     e.uniform(em.Size*0.5, em.Size*1.5),
		Lifetime: em.Lifetime * e.uniform(0.7, 1.3),
		FadeOut:  em.FadeOut,
		Gravity:  em.Gravity,
	})
}

// Advance ages and moves every particle by dt seconds and drops the
// expired ones.
func (e *Engine) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	frames := dt * ReferenceFPS

	// Read pass: mutate in place and remember what expired.
	expired := 0
	for i := range e.particles {
		p := &e.particles[i]
		p.Age += dt
		if p.Age >= p.Lifetime {
			expired++
			continue
		}
		p.Vel.Y -= e.gravity * p.Gravity * frames
		p.Pos = p.Pos.Add(p.Vel.Scale(frames))
	}
	if expired == 0 {
		return
	}

	// Compaction pass.
	live := e.particles[:0]
	for _, p := range e.particles {
		if p.Age < p.Lifetime {
			live = append(live, p)
		}
	}
	clear(e.particles[len(live):])
	e.particles = live
}

// Particles returns the live particles. The slice is only valid until the
// next Emit or Advance and must not be modified.
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Snapshot returns a copy of the live particles.
func (e *Engine) Snapshot() []Particle {
	return append([]Particle(nil), e.particles...)
}

// Len returns the number of live particles.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Clear drops every particle.
func (e *Engine) Clear() {
	clear(e.particles)
	e.particles = e.particles[:0]
}

func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func (e *Engine) intn(lo, hi int) int {
	return lo + e.rng.Intn(hi-lo+1)
}

func (e *Engine) pick(colors []core.Color) core.Color {
	return colors[e.rng.Intn(len(colors))]
}
