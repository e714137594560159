// Package game implements the platformer simulation: level sessions,
// per-frame physics and collisions, scoring, lives and the timer.
//
// The Game is driven by a single caller: one Step per frame, with input
// applied at the start of the step. It never blocks except for the
// progress store write at the end of a session.
package game

import (
	"errors"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyberpath/internal/config"
	"github.com/vovakirdan/cyberpath/internal/core"
	"github.com/vovakirdan/cyberpath/internal/levels"
	"github.com/vovakirdan/cyberpath/internal/particles"
	"github.com/vovakirdan/cyberpath/internal/progress"
	"github.com/vovakirdan/cyberpath/internal/spawn"
)

// Player is the avatar. Pos is the centre of a square of config.Player.Size.
type Player struct {
	Pos         core.Vec2
	Vel         core.Vec2 // world units per frame
	OnGround    bool
	WasAirborne bool // airborne at the start of the last frame
}

// Options configures a new Game.
type Options struct {
	Config config.Config
	Levels levels.Source  // defaults to the built-in catalog
	Store  progress.Store // defaults to an in-memory store
	Logger *log.Logger    // defaults to log.Default()
	Seed   int64          // seeds spawning, particles and sparkles
}

// Game holds one player's run through the level catalog.
type Game struct {
	cfg    config.Config
	levels levels.Source
	store  progress.Store
	logger *log.Logger

	rng       *rand.Rand
	spawner   *spawn.Spawner
	particles *particles.Engine

	phase      Phase
	level      int
	levelName  string
	background core.Color
	platforms  []core.Rect

	player  Player
	heading core.Action // direction key currently driving vx
	coins   []spawn.Coin
	enemies []spawn.Enemy
	hazards []spawn.Hazard

	score          int
	lives          int
	coinsCollected int
	totalCoins     int
	timeRemaining  float64
	sinceEnemyHit  float64
	sparkleTimer   float64

	lifeRestored bool // this level granted an extra life on load
	restoredFor  int  // level number that last granted one in this run
	recorded     bool // session outcome written to the store

	record    progress.Record
	events    []Event
	wantsMenu bool
}

// New creates a game. Call Start to begin a run.
func New(opts Options) *Game {
	if opts.Levels == nil {
		opts.Levels = levels.Builtin()
	}
	if opts.Store == nil {
		opts.Store = progress.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	g := &Game{
		cfg:       opts.Config,
		levels:    opts.Levels,
		store:     opts.Store,
		logger:    opts.Logger.WithPrefix("game"),
		rng:       rand.New(rand.NewSource(opts.Seed)),
		spawner:   spawn.New(opts.Seed+1, opts.Config),
		particles: particles.NewEngine(opts.Seed+2, opts.Config.Effects.ParticleGravity),
		lives:     opts.Config.Session.Lives,
	}
	g.record = g.store.Load()
	return g
}

// Start begins a new run at the given level: score 0, full lives.
func (g *Game) Start(level int) {
	g.score = 0
	g.lives = g.maxLives()
	g.restoredFor = 0
	g.wantsMenu = false
	g.Load(level)
}

// Load sets up a level session. Score and lives carry over from the
// previous session. An index outside the catalog ends the run in victory.
func (g *Game) Load(level int) {
	g.phase = PhaseLoading
	g.level = level
	g.recorded = false
	g.lifeRestored = false
	g.particles.Clear()

	lvl, err := g.levels.Level(level)
	if err != nil {
		if !errors.Is(err, levels.ErrLevelNotFound) {
			g.logger.Warn("cannot load level, ending run", "level", level, "err", err)
		}
		g.clearSession()
		g.phase = PhaseVictory
		g.emit(EventVictory)
		return
	}

	g.levelName = lvl.Name
	g.background = lvl.Background
	g.platforms = lvl.Platforms

	g.coins = g.spawner.Coins(lvl.Platforms, lvl.Coins)
	g.enemies = g.spawner.Enemies(lvl.Platforms, lvl.Enemies)
	g.hazards = g.spawner.Hazards(lvl.Platforms, lvl.Hazards)

	g.player = Player{Pos: core.V(g.cfg.Player.StartX, g.cfg.Player.StartY)}
	g.heading = core.ActionNone
	g.coinsCollected = 0
	g.totalCoins = len(g.coins)
	g.timeRemaining = lvl.TimeLimit * g.cfg.Session.TimeScale
	g.sinceEnemyHit = 0

	if level > 1 && g.lives < g.maxLives() && g.restoredFor != level {
		g.lives++
		g.score += g.cfg.Session.LifeRestoreBonus
		g.restoredFor = level
		g.lifeRestored = true
		g.particles.LifeRestored(g.player.Pos)
		g.emit(EventLifeRestored)
	}

	g.phase = PhaseActive
	g.logger.Debug("level loaded", "level", level, "name", lvl.Name,
		"coins", len(g.coins), "enemies", len(g.enemies), "hazards", len(g.hazards))
}

// clearSession drops every entity of the current level.
func (g *Game) clearSession() {
	g.levelName = ""
	g.background = core.ColorDefault
	g.platforms = nil
	g.coins = nil
	g.enemies = nil
	g.hazards = nil
	g.coinsCollected = 0
	g.totalCoins = 0
	g.timeRemaining = 0
	g.player = Player{Pos: core.V(g.cfg.Player.StartX, g.cfg.Player.StartY)}
	g.heading = core.ActionNone
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase { return g.phase }

// Level returns the current level index.
func (g *Game) Level() int { return g.level }

// Score returns the run score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Record returns the latest progress record.
func (g *Game) Record() progress.Record { return g.record.Clone() }

// WantsMenu reports whether the player asked to leave to the menu.
func (g *Game) WantsMenu() bool { return g.wantsMenu }

// ResetProgress wipes the stored progress.
func (g *Game) ResetProgress() {
	g.record = g.store.Reset()
}

// SetLevels swaps the level source used by subsequent loads.
func (g *Game) SetLevels(src levels.Source) {
	if src != nil {
		g.levels = src
	}
}

// maxLives is session.lives clamped to [1, config.MaxLives] for configs
// that skipped validation.
func (g *Game) maxLives() int {
	return core.Clamp(g.cfg.Session.Lives, 1, config.MaxLives)
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}
