package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyberpath/internal/core"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	if c.Count() != 5 {
		t.Fatalf("Count() = %d, expected 5", c.Count())
	}

	tests := []struct {
		index     int
		name      string
		timeLimit float64
		coins     int
		enemies   int
		hazards   int
		platforms int
		bg        core.Color
	}{
		{1, "Beginning", 90, 5, 0, 0, 6, core.RGB(40, 60, 100)},
		{2, "City Park", 85, 8, 2, 2, 7, core.RGB(60, 100, 80)},
		{3, "Mountain Ridge", 80, 10, 3, 4, 10, core.RGB(30, 40, 70)},
		{4, "Abandoned Factory", 70, 12, 4, 6, 11, core.RGB(50, 50, 60)},
		{5, "Space Station", 60, 15, 5, 8, 10, core.RGB(10, 10, 40)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := c.Level(tc.index)
			if err != nil {
				t.Fatalf("Level(%d) error: %v", tc.index, err)
			}
			if l.Index != tc.index || l.Name != tc.name {
				t.Errorf("got level %d %q", l.Index, l.Name)
			}
			if l.TimeLimit != tc.timeLimit {
				t.Errorf("TimeLimit = %v, expected %v", l.TimeLimit, tc.timeLimit)
			}
			if l.Coins != tc.coins || l.Enemies != tc.enemies || l.Hazards != tc.hazards {
				t.Errorf("counts = %d/%d/%d, expected %d/%d/%d",
					l.Coins, l.Enemies, l.Hazards, tc.coins, tc.enemies, tc.hazards)
			}
			if len(l.Platforms) != tc.platforms {
				t.Errorf("len(Platforms) = %d, expected %d", len(l.Platforms), tc.platforms)
			}
			if l.Background != tc.bg {
				t.Errorf("Background = %v, expected %v", l.Background, tc.bg)
			}
		})
	}

	l3, _ := c.Level(3)
	if ground := l3.Platforms[0]; ground != core.NewRect(0, 120, 400, 40) {
		t.Errorf("level 3 ground = %+v", ground)
	}
	if n := len(Elevated(l3.Platforms)); n != 9 {
		t.Errorf("level 3 Elevated() = %d platforms, expected 9", n)
	}
	if Elevated(l3.Platforms[:1]) != nil {
		t.Error("expected no elevated platforms for a ground-only layout")
	}
}

func TestLevelNotFound(t *testing.T) {
	c := Builtin()

	for _, idx := range []int{0, -1, 6, 100} {
		_, err := c.Level(idx)
		if !errors.Is(err, ErrLevelNotFound) {
			t.Errorf("Level(%d) error = %v, expected ErrLevelNotFound", idx, err)
		}
	}

	var nilCat *Catalog
	if _, err := nilCat.Level(1); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("nil catalog Level(1) error = %v", err)
	}
	if nilCat.Count() != 0 {
		t.Error("nil catalog should be empty")
	}
}

func TestLevelIsACopy(t *testing.T) {
	c := Builtin()
	l, _ := c.Level(1)
	l.Platforms[0] = core.NewRect(9, 9, 9, 9)

	again, _ := c.Level(1)
	if again.Platforms[0] == l.Platforms[0] {
		t.Error("mutating a returned level must not change the catalog")
	}
}

func TestNewRejectsGaps(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		ok      bool
	}{
		{"contiguous unsorted", []int{2, 1, 3}, true},
		{"gap", []int{1, 3}, false},
		{"starts at two", []int{2, 3}, false},
		{"duplicate", []int{1, 1, 2}, false},
		{"empty", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var lvls []Level
			for _, i := range tc.indices {
				lvls = append(lvls, Level{Index: i, Name: "x", TimeLimit: 10})
			}
			_, err := New(lvls)
			if (err == nil) != tc.ok {
				t.Errorf("New(%v) error = %v, expected ok=%v", tc.indices, err, tc.ok)
			}
		})
	}
}

func TestParseSingleLevelDocument(t *testing.T) {
	doc := `
index: 1
time_limit: 30
coins: 2
platforms:
  - [0, 100, 800, 40]
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	l, err := c.Level(1)
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "Level 1" {
		t.Errorf("Name = %q, expected generated name", l.Name)
	}
	if !l.Background.IsZero() {
		t.Errorf("Background = %v, expected default", l.Background)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ``},
		{"bad platform arity", "index: 1\ntime_limit: 10\nplatforms:\n  - [0, 0, 10]\n"},
		{"zero-size platform", "index: 1\ntime_limit: 10\nplatforms:\n  - [0, 0, 0, 10]\n"},
		{"no time limit", "index: 1\nplatforms: []\n"},
		{"bad background", "index: 1\ntime_limit: 10\nbackground: [1, 2]\n"},
		{"negative coins", "index: 1\ntime_limit: 10\ncoins: -1\n"},
		{"malformed yaml", "levels: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.doc)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func writeLevel(t *testing.T, dir, name string, index int) {
	t.Helper()
	doc := "index: " + string(rune('0'+index)) + "\nname: L\ntime_limit: 20\ncoins: 1\nplatforms:\n  - [0, 100, 1200, 40]\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "02.yaml", 2)
	writeLevel(t, dir, "01.yml", 1)
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", c.Count())
	}
	l, _ := c.Level(2)
	if filepath.Base(l.FilePath) != "02.yaml" {
		t.Errorf("FilePath = %q", l.FilePath)
	}
}

func TestLoadDirErrors(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("LoadDir() of an empty directory should fail")
	}

	dir := t.TempDir()
	writeLevel(t, dir, "01.yaml", 1)
	if err := os.WriteFile(filepath.Join(dir, "02.yaml"), []byte("index: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir() with a broken file should fail")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "01.yaml", 1)

	w, err := NewWatcher(dir, log.New(os.Stderr))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if w.Count() != 1 {
		t.Fatalf("Count() = %d, expected 1", w.Count())
	}

	writeLevel(t, dir, "02.yaml", 2)

	deadline := time.After(5 * time.Second)
	for w.Count() != 2 {
		select {
		case <-w.Updates():
		case <-deadline:
			t.Fatalf("watcher did not pick up the new level, Count() = %d", w.Count())
		}
	}

	if _, err := w.Level(2); err != nil {
		t.Errorf("Level(2) error after reload: %v", err)
	}
}

func TestWatcherReloadsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "world1")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeLevel(t, sub, "01.yaml", 1)

	w, err := NewWatcher(dir, log.New(os.Stderr))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if w.Count() != 1 {
		t.Fatalf("Count() = %d, expected 1", w.Count())
	}

	writeLevel(t, sub, "02.yaml", 2)

	deadline := time.After(5 * time.Second)
	for w.Count() != 2 {
		select {
		case <-w.Updates():
		case <-deadline:
			t.Fatalf("watcher missed a level added to a subdirectory, Count() = %d", w.Count())
		}
	}
}

func TestWatcherKeepsCatalogOnBadReload(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "01.yaml", 1)

	w, err := NewWatcher(dir, log.New(os.Stderr))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	before := w.Catalog()
	if err := os.WriteFile(filepath.Join(dir, "03.yaml"), []byte("index: 3\ntime_limit: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Give the watcher a moment; the gap (1, 3) must never be published.
	time.Sleep(200 * time.Millisecond)
	if w.Catalog() != before {
		t.Error("an invalid reload replaced the catalog")
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestNewWatcherFailsOnBadDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("NewWatcher() on a missing directory should fail")
	}
}
