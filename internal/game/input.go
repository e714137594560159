package game

import "github.com/vovakirdan/cyberpath/internal/core"

// inputOrder fixes the order presses are applied within one frame.
var inputOrder = []core.Action{
	core.ActionMenu,
	core.ActionRestart,
	core.ActionConfirm,
	core.ActionLeft,
	core.ActionRight,
	core.ActionJump,
}

// Apply feeds one frame of key transitions into the game.
// Presses are applied before releases.
func (g *Game) Apply(in core.InputFrame) {
	for _, a := range inputOrder {
		if in.Pressed(a) {
			g.Press(a)
		}
	}
	for _, a := range inputOrder {
		if in.Released(a) {
			g.Release(a)
		}
	}
}

// Press handles a key-down transition.
func (g *Game) Press(a core.Action) {
	if a == core.ActionMenu {
		g.wantsMenu = true
		return
	}

	switch g.phase {
	case PhaseActive:
		g.pressActive(a)
	case PhaseLevelComplete:
		if a == core.ActionConfirm || a == core.ActionJump {
			if g.level < g.levels.Count() {
				g.Load(g.level + 1)
			} else {
				g.Start(1)
			}
		}
	case PhaseGameOver, PhaseVictory:
		if a == core.ActionConfirm || a == core.ActionJump {
			g.Start(1)
		}
	}
}

func (g *Game) pressActive(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.player.Vel.X = -g.cfg.Physics.MoveSpeed
		g.heading = a
	case core.ActionRight:
		g.player.Vel.X = g.cfg.Physics.MoveSpeed
		g.heading = a
	case core.ActionJump:
		if !g.player.OnGround {
			return
		}
		g.player.Vel.Y = g.cfg.Physics.JumpSpeed
		g.player.OnGround = false
		g.particles.Jump(g.feet())
		g.emit(EventJump)
	case core.ActionRestart:
		g.Load(g.level)
	}
}

// Release handles a key-up transition. Releasing the direction that was
// pressed last stops horizontal movement, knockback included; releasing
// the other one is ignored so switching direction keeps the player moving.
func (g *Game) Release(a core.Action) {
	if g.phase != PhaseActive {
		return
	}
	if (a == core.ActionLeft || a == core.ActionRight) && a == g.heading {
		g.player.Vel.X = 0
		g.heading = core.ActionNone
	}
}

// feet returns the bottom centre of the player.
func (g *Game) feet() core.Vec2 {
	return core.V(g.player.Pos.X, g.player.Pos.Y-g.cfg.Player.Radius())
}
