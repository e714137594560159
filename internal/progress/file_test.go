package progress

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "save.toml"), quietLogger())
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	if !store.Load().Equal(Defaults()) {
		t.Error("missing file should load defaults")
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("Load() should not create the file")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "save.toml")
	store, err := OpenFile(path, quietLogger())
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	store.Update(Result{Level: 1, Score: 550, Coins: 5, Completed: true})
	saved := store.Update(Result{Level: 5, Score: 4000, Coins: 15, Completed: true, Won: true})

	other, err := OpenFile(path, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	loaded := other.Load()
	if !loaded.Equal(saved) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, saved)
	}
	if loaded.GamesWon != 1 || loaded.MaxLevelReached != 5 {
		t.Errorf("unexpected record %+v", loaded)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "max_level_reached") {
		t.Errorf("file does not look like our TOML:\n%s", data)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	if err := os.WriteFile(path, []byte("max_level_reached = [[[\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := OpenFile(path, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if !store.Load().Equal(Defaults()) {
		t.Error("corrupt file should load defaults")
	}

	// Saving over a corrupt file recovers it.
	store.Update(Result{Level: 1, Score: 10})
	if store.Load().Best(1) != 10 {
		t.Error("Update() should rewrite a corrupt file")
	}
}

func TestFileStoreBackfillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	doc := "total_score = 1200\n\n[level_records]\n\"2\" = 700\nbogus = 3\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := OpenFile(path, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	rec := store.Load()

	if rec.MaxLevelReached != 1 {
		t.Errorf("MaxLevelReached = %d, expected backfilled 1", rec.MaxLevelReached)
	}
	if rec.TotalScore != 1200 || rec.Best(2) != 700 {
		t.Errorf("stored values lost: %+v", rec)
	}
	for i := 1; i <= 5; i++ {
		if _, ok := rec.LevelRecords[i]; !ok {
			t.Errorf("level %d record not backfilled", i)
		}
	}
}

func TestFileStoreReset(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "save.toml"), quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	store.Update(Result{Level: 3, Score: 300})

	if !store.Reset().Equal(Defaults()) {
		t.Error("Reset() should return defaults")
	}
	if !store.Load().Equal(Defaults()) {
		t.Error("Load() after Reset() should return defaults")
	}
}

func TestStoresSatisfyInterface(t *testing.T) {
	var _ Store = NewMemoryStore()
	var _ Store = (*SQLiteStore)(nil)
	var _ Store = (*FileStore)(nil)
}
