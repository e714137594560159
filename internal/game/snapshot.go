package game

import (
	"github.com/vovakirdan/cyberpath/internal/config"
	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/particles"
	"github.com/vovakirdan/cyberpath/internal/progress"
	"github.com/vovakirdan/cyberpath/internal/spawn"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the Game.
type Snapshot struct {
	Phase         Phase
	Level         int
	LevelCount    int
	LevelName     string
	NextLevelName string // empty on the final level
	Background    core.Color

	Config    config.Config
	Platforms []core.Rect
	Player    Player
	Coins     []spawn.Coin // uncollected only, Pos already animated
	Enemies   []spawn.Enemy
	Hazards   []spawn.Hazard
	Particles []particles.Particle

	Score          int
	Lives          int
	MaxLives       int
	CoinsCollected int
	TotalCoins     int
	TimeRemaining  float64
	LifeRestored   bool
	BestScore      int
	Record         progress.Record
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:          g.phase,
		Level:          g.level,
		LevelCount:     g.levels.Count(),
		LevelName:      g.levelName,
		Background:     g.background,
		Config:         g.cfg,
		Platforms:      append([]core.Rect(nil), g.platforms...),
		Player:         g.player,
		Enemies:        append([]spawn.Enemy(nil), g.enemies...),
		Hazards:        append([]spawn.Hazard(nil), g.hazards...),
		Particles:      g.particles.Snapshot(),
		Score:          g.score,
		Lives:          g.lives,
		MaxLives:       g.maxLives(),
		CoinsCollected: g.coinsCollected,
		TotalCoins:     g.totalCoins,
		TimeRemaining:  g.timeRemaining,
		LifeRestored:   g.lifeRestored,
		BestScore:      g.record.Best(g.level),
		Record:         g.record.Clone(),
	}

	for _, c := range g.coins {
		if c.Collected {
			continue
		}
		c.Pos = c.Animated(g.cfg.Coin.BounceAmplitude)
		s.Coins = append(s.Coins, c)
	}

	if next, err := g.levels.Level(g.level + 1); err == nil {
		s.NextLevelName = next.Name
	}
	return s
}
