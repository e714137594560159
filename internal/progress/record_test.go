package progress

import "testing"

func TestDefaults(t *testing.T) {
	r := Defaults()

	if r.MaxLevelReached != 1 {
		t.Errorf("MaxLevelReached = %d, expected 1", r.MaxLevelReached)
	}
	for i := 1; i <= 5; i++ {
		best, ok := r.LevelRecords[i]
		if !ok || best != 0 {
			t.Errorf("LevelRecords[%d] = %d, %v; expected 0, true", i, best, ok)
		}
	}
	if r.TotalScore != 0 || r.TotalCoins != 0 || r.GamesPlayed != 0 || r.GamesWon != 0 {
		t.Errorf("counters should start at zero: %+v", r)
	}
}

func TestApply(t *testing.T) {
	r := Defaults()

	r = r.Apply(Result{Level: 2, Score: 700, Coins: 6, Completed: true})
	if r.MaxLevelReached != 2 {
		t.Errorf("MaxLevelReached = %d, expected 2", r.MaxLevelReached)
	}
	if r.Best(2) != 700 {
		t.Errorf("Best(2) = %d, expected 700", r.Best(2))
	}

	// A worse score at a lower level keeps max and best.
	r = r.Apply(Result{Level: 1, Score: 100, Coins: 1})
	r = r.Apply(Result{Level: 2, Score: 300, Coins: 2})
	if r.MaxLevelReached != 2 {
		t.Errorf("MaxLevelReached = %d, expected 2", r.MaxLevelReached)
	}
	if r.Best(2) != 700 {
		t.Errorf("Best(2) = %d, expected 700 to survive a worse run", r.Best(2))
	}
	if r.TotalScore != 1100 || r.TotalCoins != 9 || r.GamesPlayed != 3 {
		t.Errorf("totals = %d/%d/%d, expected 1100/9/3", r.TotalScore, r.TotalCoins, r.GamesPlayed)
	}
	if r.GamesWon != 0 {
		t.Errorf("GamesWon = %d, expected 0", r.GamesWon)
	}

	r = r.Apply(Result{Level: 5, Score: 5000, Coins: 15, Completed: true, Won: true})
	if r.GamesWon != 1 {
		t.Errorf("GamesWon = %d, expected 1", r.GamesWon)
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	r := Defaults()
	_ = r.Apply(Result{Level: 3, Score: 999})
	if r.Best(3) != 0 || r.GamesPlayed != 0 {
		t.Errorf("Apply mutated its receiver: %+v", r)
	}
}

func TestBackfill(t *testing.T) {
	r := Record{LevelRecords: map[int]int{2: 50}}
	r.Backfill()

	if r.MaxLevelReached != 1 {
		t.Errorf("MaxLevelReached = %d, expected 1", r.MaxLevelReached)
	}
	if r.Best(2) != 50 {
		t.Errorf("Backfill overwrote an existing record: %d", r.Best(2))
	}
	if len(r.LevelRecords) != 5 {
		t.Errorf("len(LevelRecords) = %d, expected 5", len(r.LevelRecords))
	}
}

func TestUnlocked(t *testing.T) {
	r := Defaults()
	r.MaxLevelReached = 3

	tests := []struct {
		level    int
		expected bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{4, false},
	}
	for _, tc := range tests {
		if got := r.Unlocked(tc.level); got != tc.expected {
			t.Errorf("Unlocked(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestResultOutcome(t *testing.T) {
	tests := []struct {
		res      Result
		expected string
	}{
		{Result{}, "game_over"},
		{Result{Completed: true}, "complete"},
		{Result{Completed: true, Won: true}, "won"},
	}
	for _, tc := range tests {
		if got := tc.res.Outcome(); got != tc.expected {
			t.Errorf("Outcome(%+v) = %q, expected %q", tc.res, got, tc.expected)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	rec := m.Update(Result{Level: 1, Score: 500, Coins: 5, Completed: true})
	if !rec.Equal(m.Load()) {
		t.Error("Load() should return the updated record")
	}

	// Mutating a returned record must not leak into the store.
	rec.LevelRecords[1] = 1
	if m.Load().Best(1) != 500 {
		t.Error("store shares its map with callers")
	}

	if !m.Reset().Equal(Defaults()) {
		t.Error("Reset() should return defaults")
	}
}
