package progress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// fileDTO is the on-disk shape of a Record. TOML keys are strings, so the
// per-level map is keyed by the decimal level index.
type fileDTO struct {
	MaxLevelReached int            `toml:"max_level_reached"`
	TotalScore      int            `toml:"total_score"`
	TotalCoins      int            `toml:"total_coins"`
	GamesPlayed     int            `toml:"games_played"`
	GamesWon        int            `toml:"games_won"`
	LevelRecords    map[string]int `toml:"level_records"`
}

func toDTO(r Record) fileDTO {
	dto := fileDTO{
		MaxLevelReached: r.MaxLevelReached,
		TotalScore:      r.TotalScore,
		TotalCoins:      r.TotalCoins,
		GamesPlayed:     r.GamesPlayed,
		GamesWon:        r.GamesWon,
		LevelRecords:    make(map[string]int, len(r.LevelRecords)),
	}
	for level, best := range r.LevelRecords {
		dto.LevelRecords[strconv.Itoa(level)] = best
	}
	return dto
}

func (dto fileDTO) record() Record {
	r := Record{
		MaxLevelReached: dto.MaxLevelReached,
		TotalScore:      dto.TotalScore,
		TotalCoins:      dto.TotalCoins,
		GamesPlayed:     dto.GamesPlayed,
		GamesWon:        dto.GamesWon,
		LevelRecords:    make(map[int]int, len(dto.LevelRecords)),
	}
	for key, best := range dto.LevelRecords {
		level, err := strconv.Atoi(key)
		if err != nil {
			continue // Skip keys that are not level numbers
		}
		r.LevelRecords[level] = best
	}
	r.Backfill()
	return r
}

// FileStore keeps a single player's record in a TOML file.
type FileStore struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
	last   Record
}

// OpenFile prepares a file store at path. The file itself is created on the
// first save.
func OpenFile(path string, logger *log.Logger) (*FileStore, error) {
	p, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot prepare %s: %w", path, err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &FileStore{
		path:   p,
		logger: logger.WithPrefix("progress"),
		last:   Defaults(),
	}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the record; a missing or corrupt file yields the defaults.
func (f *FileStore) Load() Record {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, err := f.read()
	if err != nil {
		f.logger.Warn("cannot load progress, using defaults", "path", f.path, "err", err)
		return Defaults()
	}
	f.last = rec
	return rec.Clone()
}

// Update applies a session result and rewrites the file.
func (f *FileStore) Update(res Result) Record {
	f.mu.Lock()
	defer f.mu.Unlock()

	cur, err := f.read()
	if err != nil {
		f.logger.Warn("cannot load progress before saving", "path", f.path, "err", err)
		cur = f.last
	}
	rec := cur.Apply(res)
	f.last = rec

	if err := f.write(rec); err != nil {
		f.logger.Warn("cannot save progress", "path", f.path, "err", err)
	}
	return rec.Clone()
}

// Reset overwrites the file with the defaults.
func (f *FileStore) Reset() Record {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = Defaults()
	if err := f.write(f.last); err != nil {
		f.logger.Warn("cannot reset progress", "path", f.path, "err", err)
	}
	return f.last.Clone()
}

func (f *FileStore) read() (Record, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Record{}, err
	}

	var dto fileDTO
	if err := toml.Unmarshal(data, &dto); err != nil {
		return Record{}, fmt.Errorf("progress: corrupt save file: %w", err)
	}
	return dto.record(), nil
}

// write replaces the file atomically via a temp file and rename.
func (f *FileStore) write(r Record) error {
	data, err := toml.Marshal(toDTO(r))
	if err != nil {
		return fmt.Errorf("progress: cannot encode record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".progress-*.toml")
	if err != nil {
		return fmt.Errorf("progress: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("progress: cannot write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("progress: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("progress: cannot replace %s: %w", f.path, err)
	}
	return nil
}
