package game

// Phase is the state of the current level session.
type Phase int

const (
	PhaseLoading       Phase = iota // transient while a level is being set up
	PhaseActive                     // simulation running
	PhaseLevelComplete              // every coin collected; waiting for confirm
	PhaseGameOver                   // out of lives or time; waiting for confirm
	PhaseVictory                    // no level left to load
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseActive:
		return "Active"
	case PhaseLevelComplete:
		return "LevelComplete"
	case PhaseGameOver:
		return "GameOver"
	case PhaseVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the session has ended and waits for input.
func (p Phase) Terminal() bool {
	return p == PhaseLevelComplete || p == PhaseGameOver || p == PhaseVictory
}

// Event is a gameplay occurrence other components react to (sound, UI).
type Event int

const (
	EventCoin Event = iota
	EventJump
	EventLand
	EventEnemyHit
	EventHazardHit
	EventLifeRestored
	EventLevelComplete
	EventGameOver
	EventVictory
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventCoin:
		return "Coin"
	case EventJump:
		return "Jump"
	case EventLand:
		return "Land"
	case EventEnemyHit:
		return "EnemyHit"
	case EventHazardHit:
		return "HazardHit"
	case EventLifeRestored:
		return "LifeRestored"
	case EventLevelComplete:
		return "LevelComplete"
	case EventGameOver:
		return "GameOver"
	case EventVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}
