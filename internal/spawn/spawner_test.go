package spawn

import (
	"math"
	"testing"

	"github.com/vovakirdan/cyberpath/internal/config"
	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/levels"
)

func inBounds(t *testing.T, what string, p core.Vec2, cfg config.Config) {
	t.Helper()
	if p.X < 0 || p.X > cfg.World.Width || p.Y < 0 || p.Y > cfg.World.Height {
		t.Errorf("%s at %v is outside the play area", what, p)
	}
}

func TestCoinsOnePerPlatform(t *testing.T) {
	cfg := config.Default()
	lvl, _ := levels.Builtin().Level(1)
	s := New(1, cfg)

	coins := s.Coins(lvl.Platforms, lvl.Coins)
	if len(coins) != 5 {
		t.Fatalf("len(coins) = %d, expected 5", len(coins))
	}

	for i, c := range coins {
		p := lvl.Platforms[i]
		want := core.V(p.X+p.W/2, p.Top()+35)
		if c.Pos != want {
			t.Errorf("coin %d at %v, expected %v", i, c.Pos, want)
		}
		if c.Collected {
			t.Errorf("coin %d spawned collected", i)
		}
		if c.Bounce < 0 || c.Bounce >= 2*math.Pi {
			t.Errorf("coin %d bounce phase %f out of range", i, c.Bounce)
		}
	}
}

func TestCoinsSegments(t *testing.T) {
	cfg := config.Default()
	lvl, _ := levels.Builtin().Level(4) // 12 coins over 11 platforms
	s := New(1, cfg)

	coins := s.Coins(lvl.Platforms, lvl.Coins)
	if len(coins) != 12 {
		t.Fatalf("len(coins) = %d, expected 12", len(coins))
	}

	// Two segments per platform: first pass at 1/3, wrap-around at 2/3.
	if want := core.V(400, 195); coins[0].Pos != want {
		t.Errorf("coin 0 at %v, expected %v", coins[0].Pos, want)
	}
	if want := core.V(800, 195); coins[11].Pos != want {
		t.Errorf("coin 11 at %v, expected %v", coins[11].Pos, want)
	}
}

func TestCoinsFallback(t *testing.T) {
	cfg := config.Default()
	s := New(5, cfg)

	coins := s.Coins(nil, 10)
	if len(coins) != 10 {
		t.Fatalf("len(coins) = %d, expected 10", len(coins))
	}
	for i, c := range coins {
		if c.Pos.X < 100 || c.Pos.X > 1100 || c.Pos.Y < 200 || c.Pos.Y > 700 {
			t.Errorf("fallback coin %d at %v outside the random band", i, c.Pos)
		}
	}

	if got := s.Coins(nil, 0); len(got) != 0 {
		t.Errorf("Coins(nil, 0) = %d coins", len(got))
	}
	if got := s.Coins(nil, -2); len(got) != 0 {
		t.Errorf("Coins(nil, -2) = %d coins", len(got))
	}
}

func TestCoinAnimated(t *testing.T) {
	c := Coin{Pos: core.V(10, 20), Bounce: math.Pi / 2}
	if got := c.Animated(3); math.Abs(got.Y-23) > 1e-9 || got.X != 10 {
		t.Errorf("Animated(3) = %v, expected (10, 23)", got)
	}
}

func TestEnemiesOnElevatedPlatforms(t *testing.T) {
	cfg := config.Default()
	lvl, _ := levels.Builtin().Level(5)

	for seed := int64(0); seed < 10; seed++ {
		s := New(seed, cfg)
		enemies := s.Enemies(lvl.Platforms, lvl.Enemies)
		if len(enemies) != 5 {
			t.Fatalf("len(enemies) = %d, expected 5", len(enemies))
		}

		for i, e := range enemies {
			if math.Abs(e.VX) != cfg.Enemy.Speed {
				t.Errorf("enemy %d speed %f, expected ±%f", i, e.VX, cfg.Enemy.Speed)
			}

			found := false
			for _, p := range levels.Elevated(lvl.Platforms) {
				if e.Pos == core.V(p.X+p.W/2, p.Top()+22.5+5) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("seed %d: enemy %d at %v is not centred on an elevated platform", seed, i, e.Pos)
			}
			inBounds(t, "enemy", e.Pos, cfg)
		}
	}
}

func TestEnemiesGroundOnly(t *testing.T) {
	cfg := config.Default()
	s := New(3, cfg)

	enemies := s.Enemies([]core.Rect{core.NewRect(0, 120, 1200, 40)}, 3)
	for i, e := range enemies {
		if e.Pos.Y != 200 {
			t.Errorf("enemy %d y = %f, expected the fixed fallback 200", i, e.Pos.Y)
		}
		if e.Pos.X < 100 || e.Pos.X > 1100 {
			t.Errorf("enemy %d x = %f outside [100, 1100]", i, e.Pos.X)
		}
	}
}

func TestHazardPlacement(t *testing.T) {
	cfg := config.Default()
	lvl, _ := levels.Builtin().Level(4)
	s := New(11, cfg)

	hazards := s.Hazards(lvl.Platforms, 200)
	ground, between := 0, 0
	for i, h := range hazards {
		inBounds(t, "hazard", h.Pos, cfg)
		if h.Rotation != 0 {
			t.Errorf("hazard %d rotation %f, expected 0", i, h.Rotation)
		}
		if h.Pos.Y == cfg.Hazard.GroundY {
			ground++
		} else {
			between++
		}
	}

	// Ground chance is 0.6; allow generous slack.
	if ground < 90 || ground > 150 {
		t.Errorf("ground hazards = %d of 200, expected about 120", ground)
	}
	if between == 0 {
		t.Error("no hazards placed between platforms")
	}
}

func TestHazardMidpoint(t *testing.T) {
	cfg := config.Default()
	cfg.Hazard.GroundChance = 0
	platforms := []core.Rect{
		core.NewRect(0, 120, 1200, 40),
		core.NewRect(100, 200, 100, 20),
		core.NewRect(500, 400, 200, 20),
	}
	s := New(2, cfg)

	for _, h := range s.Hazards(platforms, 20) {
		a := core.V((100+500+100)/2.0, 300) // p1 = left, p2 = right
		b := core.V((500+100+50)/2.0, 300)  // p1 = right, p2 = left
		if h.Pos != a && h.Pos != b {
			t.Errorf("hazard at %v is neither %v nor %v", h.Pos, a, b)
		}
	}
}

func TestHazardFallbackBand(t *testing.T) {
	cfg := config.Default()
	cfg.Hazard.GroundChance = 0
	s := New(4, cfg)

	platforms := []core.Rect{core.NewRect(0, 120, 1200, 40), core.NewRect(100, 200, 100, 20)}
	for i, h := range s.Hazards(platforms, 30) {
		if h.Pos.Y < 200 || h.Pos.Y > 400 {
			t.Errorf("hazard %d y = %f outside the safe band", i, h.Pos.Y)
		}
	}
}

func TestPositionsClampedToPlayArea(t *testing.T) {
	cfg := config.Default()
	s := New(1, cfg)

	platforms := []core.Rect{core.NewRect(1150, 780, 400, 40)}
	for _, c := range s.Coins(platforms, 1) {
		if c.Pos != core.V(1200, 800) {
			t.Errorf("coin at %v, expected clamp to (1200, 800)", c.Pos)
		}
	}
}
