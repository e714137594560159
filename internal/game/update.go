package game

import (
	"math"

	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/progress"
)

// StepResult reports what happened during one Step.
type StepResult struct {
	Phase   Phase
	Changed bool    // phase differs from before the step
	Events  []Event // events since the previous step, in order
}

// Step applies one frame of input and advances the simulation by dt
// seconds. Player and enemy velocities are per frame; the timer, cooldown
// and effects use dt.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	before := g.phase
	g.Apply(in)

	if dt > 0 {
		g.sinceEnemyHit += dt
		g.particles.Advance(dt)
		g.ambient(dt)
		g.animate(dt)

		if g.phase == PhaseActive {
			g.update(dt)
		}
	}

	if g.phase.Terminal() && !g.recorded {
		g.finishSession()
	}

	res := StepResult{
		Phase:   g.phase,
		Changed: g.phase != before,
		Events:  g.events,
	}
	g.events = nil
	return res
}

// ambient sprinkles background sparkles in every phase.
func (g *Game) ambient(dt float64) {
	g.sparkleTimer += dt
	if g.sparkleTimer <= g.cfg.Effects.SparkleInterval {
		return
	}
	g.sparkleTimer = 0
	if g.rng.Float64() < g.cfg.Effects.SparkleChance {
		g.particles.SparkleAnywhere(g.cfg.World.Width, g.cfg.World.Height)
	}
}

// animate advances coin and hazard animation phases.
func (g *Game) animate(dt float64) {
	for i := range g.coins {
		g.coins[i].Rotation += dt * g.cfg.Coin.SpinRate
		g.coins[i].Bounce += dt * g.cfg.Coin.BounceRate
	}
	for i := range g.hazards {
		g.hazards[i].Rotation += dt * g.cfg.Hazard.SpinRate
		g.hazards[i].Pulse += dt * g.cfg.Hazard.PulseRate
	}
}

// update runs one active frame. Each stage may end the session, in which
// case the rest of the frame is skipped.
func (g *Game) update(dt float64) {
	g.timeRemaining -= dt
	if g.timeRemaining <= 0 {
		g.timeRemaining = 0
		g.end(PhaseGameOver)
		return
	}

	if !g.movePlayer() {
		return
	}
	g.collidePlatforms()
	g.collectCoins()

	if g.coinsCollected == g.totalCoins {
		bonus := int(math.Floor(g.timeRemaining)) * g.cfg.Session.TimeBonusPerSecond
		g.score += bonus
		g.end(PhaseLevelComplete)
		return
	}

	if !g.updateEnemies() {
		return
	}
	g.collideHazards()
}

// movePlayer integrates the player and applies the screen bounds.
// It returns false if the player fell to their death.
func (g *Game) movePlayer() bool {
	p := &g.player
	r := g.cfg.Player.Radius()

	p.WasAirborne = !p.OnGround
	p.Vel.Y -= g.cfg.Physics.Gravity
	p.Pos = p.Pos.Add(p.Vel)

	p.Pos.X = core.Clamp(p.Pos.X, r, g.cfg.World.Width-r)

	if g.level > g.cfg.Physics.FloorClampMaxLevel {
		if p.Pos.Y < g.cfg.Physics.FallDeathY {
			g.lives = 0
			g.end(PhaseGameOver)
			return false
		}
	} else if p.Pos.Y < r {
		p.Pos.Y = r
		p.Vel.Y = 0
	}

	if p.Pos.Y > g.cfg.World.Height-r {
		p.Pos.Y = g.cfg.World.Height - r
		p.Vel.Y = 0
	}
	return true
}

// collidePlatforms lands the player on the first platform it overlaps
// while not rising. Overlap is tested at the current position only, so a
// fast enough fall can tunnel through a thin platform.
func (g *Game) collidePlatforms() {
	p := &g.player
	r := g.cfg.Player.Radius()
	floored := g.level <= g.cfg.Physics.FloorClampMaxLevel && p.Pos.Y <= r

	p.OnGround = floored
	box := core.RectAround(p.Pos, g.cfg.Player.Size, g.cfg.Player.Size)
	for _, plat := range g.platforms {
		if p.Vel.Y > 0 || !box.Intersects(plat) {
			continue
		}
		p.Pos.Y = plat.Top() + r
		p.Vel.Y = 0
		p.OnGround = true
		if p.WasAirborne {
			g.particles.Landing(g.feet())
			g.emit(EventLand)
		}
		return
	}
}

func (g *Game) collectCoins() {
	radius := g.cfg.Player.Radius()
	for i := range g.coins {
		c := &g.coins[i]
		if c.Collected {
			continue
		}
		if !core.CirclesOverlap(g.player.Pos, radius, c.Animated(g.cfg.Coin.BounceAmplitude), g.cfg.Coin.Size) {
			continue
		}
		c.Collected = true
		g.coinsCollected++
		g.score += g.cfg.Coin.Score
		g.particles.CoinPickup(c.Pos)
		g.emit(EventCoin)
	}
}

// updateEnemies moves enemies and resolves contact. Contact only hurts
// once per cooldown window. It returns false if the player ran out of lives.
func (g *Game) updateEnemies() bool {
	half := g.cfg.Enemy.Size / 2
	radius := g.cfg.Player.Radius()

	for i := range g.enemies {
		e := &g.enemies[i]
		e.Pos.X += e.VX
		if e.Pos.X < half || e.Pos.X > g.cfg.World.Width-half {
			e.VX = -e.VX
		}

		if !core.CirclesOverlap(e.Pos, half, g.player.Pos, radius) || g.sinceEnemyHit <= g.cfg.Enemy.HitCooldown {
			continue
		}

		g.sinceEnemyHit = 0
		g.particles.EnemyHit(g.player.Pos)
		g.emit(EventEnemyHit)
		g.knockback(e.Pos, g.cfg.Enemy.Knockback, g.cfg.Enemy.Lift)
		if g.loseLife() {
			return false
		}
	}
	return true
}

// collideHazards hurts the player on every frame of contact.
func (g *Game) collideHazards() {
	radius := g.cfg.Player.Radius()

	for _, h := range g.hazards {
		if !core.CirclesOverlap(h.Pos, g.cfg.Hazard.Height, g.player.Pos, radius) {
			continue
		}
		g.particles.HazardHit(g.player.Pos)
		g.emit(EventHazardHit)
		g.knockback(h.Pos, g.cfg.Hazard.Knockback, g.cfg.Hazard.Lift)
		if g.loseLife() {
			return
		}
	}
}

// knockback pushes the player horizontally away from src with a small hop.
func (g *Game) knockback(src core.Vec2, strength, lift float64) {
	if g.player.Pos.Sub(src).X < 0 {
		g.player.Vel.X = -strength
	} else {
		g.player.Vel.X = strength
	}
	g.player.Vel.Y = strength * lift
}

// loseLife takes a life and reports whether that ended the session.
func (g *Game) loseLife() bool {
	g.lives = max(g.lives-1, 0)
	if g.lives == 0 {
		g.end(PhaseGameOver)
		return true
	}
	return false
}

// end moves the session into a terminal phase.
func (g *Game) end(phase Phase) {
	g.phase = phase
	switch phase {
	case PhaseLevelComplete:
		g.particles.LevelComplete(core.V(g.cfg.World.Width/2, g.cfg.World.Height/2))
		g.emit(EventLevelComplete)
	case PhaseGameOver:
		g.emit(EventGameOver)
	}
}

// finishSession writes the session outcome once. Victory has no level
// session to record.
func (g *Game) finishSession() {
	g.recorded = true
	if g.phase == PhaseVictory {
		return
	}

	completed := g.phase == PhaseLevelComplete
	g.record = g.store.Update(progress.Result{
		Level:     g.level,
		Score:     g.score,
		Coins:     g.coinsCollected,
		Completed: completed,
		Won:       completed && g.level == g.levels.Count(),
	})
	g.logger.Debug("session recorded", "level", g.level, "phase", g.phase, "score", g.score)
}
