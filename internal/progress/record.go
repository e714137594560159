// Package progress persists per-level best scores and lifetime statistics.
//
// Every Store degrades instead of failing: unreadable data loads as the
// defaults and failed writes are logged, so the game never stops because of
// persistence trouble.
package progress

import "maps"

// DefaultLevelCount is the number of level records a fresh Record carries.
const DefaultLevelCount = 5

// Record is the persisted progress of one player.
type Record struct {
	MaxLevelReached int
	LevelRecords    map[int]int // level index -> best score
	TotalScore      int
	TotalCoins      int
	GamesPlayed     int
	GamesWon        int
}

// Result describes how a level session ended.
type Result struct {
	Level     int
	Score     int
	Coins     int
	Completed bool // false means game over
	Won       bool // completed the final level of the campaign
}

// Outcome returns the run outcome label stored in the run history.
func (r Result) Outcome() string {
	switch {
	case r.Won:
		return "won"
	case r.Completed:
		return "complete"
	default:
		return "game_over"
	}
}

// Defaults returns the record of a player who never played.
func Defaults() Record {
	r := Record{MaxLevelReached: 1}
	r.Backfill()
	return r
}

// Backfill fills in anything a stored record was missing.
func (r *Record) Backfill() {
	if r.MaxLevelReached < 1 {
		r.MaxLevelReached = 1
	}
	if r.LevelRecords == nil {
		r.LevelRecords = make(map[int]int, DefaultLevelCount)
	}
	for i := 1; i <= DefaultLevelCount; i++ {
		if _, ok := r.LevelRecords[i]; !ok {
			r.LevelRecords[i] = 0
		}
	}
}

// Apply returns the record updated with the outcome of one session.
// The receiver is not modified.
func (r Record) Apply(res Result) Record {
	out := r.Clone()
	out.Backfill()

	out.MaxLevelReached = max(out.MaxLevelReached, res.Level)
	out.LevelRecords[res.Level] = max(out.LevelRecords[res.Level], res.Score)
	out.TotalScore += res.Score
	out.TotalCoins += res.Coins
	out.GamesPlayed++
	if res.Won {
		out.GamesWon++
	}
	return out
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	r.LevelRecords = maps.Clone(r.LevelRecords)
	return r
}

// Best returns the best score for a level.
func (r Record) Best(level int) int {
	return r.LevelRecords[level]
}

// Unlocked reports whether the player may start at the given level.
func (r Record) Unlocked(level int) bool {
	return level >= 1 && level <= max(r.MaxLevelReached, 1)
}

// Equal reports whether two records hold the same values.
func (r Record) Equal(o Record) bool {
	a, b := r.Clone(), o.Clone()
	a.Backfill()
	b.Backfill()
	return a.MaxLevelReached == b.MaxLevelReached &&
		a.TotalScore == b.TotalScore &&
		a.TotalCoins == b.TotalCoins &&
		a.GamesPlayed == b.GamesPlayed &&
		a.GamesWon == b.GamesWon &&
		maps.Equal(a.LevelRecords, b.LevelRecords)
}
