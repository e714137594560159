package progress

import (
	"os"
	"path/filepath"
	"sync"
)

// Store loads and updates a player's Record. Implementations never return
// errors: failures are logged and the in-memory value is returned instead.
type Store interface {
	Load() Record
	Update(res Result) Record
	Reset() Record
}

// MemoryStore keeps the record in memory only. It is used in tests and as
// the fallback when no persistent store can be opened.
type MemoryStore struct {
	mu  sync.Mutex
	rec Record
}

// NewMemoryStore returns a store holding the default record.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rec: Defaults()}
}

// Load returns a copy of the current record.
func (m *MemoryStore) Load() Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rec.Clone()
}

// Update applies a session result.
func (m *MemoryStore) Update(res Result) Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = m.rec.Apply(res)
	return m.rec.Clone()
}

// Reset restores the default record.
func (m *MemoryStore) Reset() Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = Defaults()
	return m.rec.Clone()
}

// expandPath expands a leading ~ and creates the parent directory.
func expandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, nil
}
