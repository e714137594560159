package spawn

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cyberpath/internal/config"
	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/levels"
)

// Spawner generates level entities. Platforms[0] is always the ground lane.
type Spawner struct {
	rng *rand.Rand
	cfg config.Config
}

// New creates a spawner with its own random source.
func New(seed int64, cfg config.Config) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Coins distributes count coins round-robin over the platforms. Once every
// platform holds one coin, further coins are spread into at most two evenly
// spaced segments along each platform.
func (s *Spawner) Coins(platforms []core.Rect, count int) []Coin {
	coins := make([]Coin, 0, max(count, 0))
	n := len(platforms)

	for i := 0; i < count; i++ {
		var pos core.Vec2
		if n > 0 {
			p := platforms[i%n]
			segments := min(2, count/n+1)
			segment := (i / n) % segments
			pos = core.V(
				p.X+p.W*float64(segment+1)/float64(segments+1),
				p.Top()+s.cfg.Coin.Clearance,
			)
		} else {
			pos = core.V(s.randX(), s.randRange(200, s.cfg.World.Height-100))
		}

		coins = append(coins, Coin{
			Pos:      s.clamp(pos),
			Rotation: s.rng.Float64() * 2 * math.Pi,
			Bounce:   s.rng.Float64() * 2 * math.Pi,
		})
	}
	return coins
}

// Enemies puts each enemy at the centre of a random elevated platform,
// heading left or right.
func (s *Spawner) Enemies(platforms []core.Rect, count int) []Enemy {
	enemies := make([]Enemy, 0, max(count, 0))
	elevated := levels.Elevated(platforms)

	for i := 0; i < count; i++ {
		var pos core.Vec2
		if len(elevated) > 0 {
			p := elevated[s.rng.Intn(len(elevated))]
			pos = core.V(p.Center().X, p.Top()+s.cfg.Enemy.Size/2+s.cfg.Enemy.SpawnLift)
		} else {
			pos = core.V(s.randX(), 200)
		}

		vx := s.cfg.Enemy.Speed
		if s.rng.Intn(2) == 0 {
			vx = -vx
		}
		enemies = append(enemies, Enemy{Pos: s.clamp(pos), VX: vx})
	}
	return enemies
}

// Hazards places each hazard either on the ground lane or between two
// distinct elevated platforms.
func (s *Spawner) Hazards(platforms []core.Rect, count int) []Hazard {
	hazards := make([]Hazard, 0, max(count, 0))
	elevated := levels.Elevated(platforms)

	for i := 0; i < count; i++ {
		var pos core.Vec2
		switch {
		case s.rng.Float64() < s.cfg.Hazard.GroundChance:
			pos = core.V(s.randX(), s.cfg.Hazard.GroundY)
		case len(platforms) > 2:
			perm := s.rng.Perm(len(elevated))
			p1, p2 := elevated[perm[0]], elevated[perm[1]]
			pos = core.V((p1.X+p2.X+p2.W/2)/2, (p1.Y+p2.Y)/2)
		default:
			pos = core.V(s.randX(), s.randRange(200, 400))
		}

		hazards = append(hazards, Hazard{
			Pos:   s.clamp(pos),
			Pulse: s.rng.Float64() * 2 * math.Pi,
		})
	}
	return hazards
}

// randX returns a whole-unit x at least 100 units from either edge.
func (s *Spawner) randX() float64 {
	return s.randRange(100, s.cfg.World.Width-100)
}

// randRange returns a whole number in [lo, hi].
func (s *Spawner) randRange(lo, hi float64) float64 {
	a, b := int(lo), int(hi)
	if b <= a {
		return float64(a)
	}
	return float64(a + s.rng.Intn(b-a+1))
}

// clamp keeps a position inside the visible play area.
func (s *Spawner) clamp(p core.Vec2) core.Vec2 {
	return core.V(
		core.Clamp(p.X, 0, s.cfg.World.Width),
		core.Clamp(p.Y, 0, s.cfg.World.Height),
	)
}
