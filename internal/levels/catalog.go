// Package levels provides the read-only level catalog: the built-in
// campaign embedded in the binary, YAML loading from a directory and a
// watcher that hot-reloads a custom level directory.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
)

//go:embed defaults/levels.yaml
var builtinYAML []byte

// ErrLevelNotFound is returned for an index outside the catalog.
var ErrLevelNotFound = errors.New("levels: level not found")

// Source is what the simulation reads levels from.
type Source interface {
	Level(index int) (Level, error)
	Count() int
}

// Catalog maps level indices 1..N to level definitions.
// It is immutable after construction and safe for concurrent reads.
type Catalog struct {
	levels []Level // levels[i] has Index i+1
}

// New builds a catalog, requiring indices to form the contiguous range 1..N.
func New(levels []Level) (*Catalog, error) {
	sorted := make([]Level, len(levels))
	for i, l := range levels {
		sorted[i] = l.clone()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	for i, l := range sorted {
		if l.Index != i+1 {
			if i > 0 && l.Index == sorted[i-1].Index {
				return nil, fmt.Errorf("levels: duplicate level index %d", l.Index)
			}
			return nil, fmt.Errorf("levels: level indices must be contiguous from 1, missing %d", i+1)
		}
	}

	return &Catalog{levels: sorted}, nil
}

// Parse builds a catalog from one YAML document.
func Parse(data []byte) (*Catalog, error) {
	lvls, err := parseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return New(lvls)
}

// Builtin returns the five-level campaign shipped with the game.
func Builtin() *Catalog {
	c, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded catalog is invalid: %v", err))
	}
	return c
}

// Level returns the level with the given 1-based index.
func (c *Catalog) Level(index int) (Level, error) {
	if c == nil || index < 1 || index > len(c.levels) {
		return Level{}, fmt.Errorf("%w: %d", ErrLevelNotFound, index)
	}
	return c.levels[index-1].clone(), nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.levels)
}

// Levels returns a copy of every level in index order.
func (c *Catalog) Levels() []Level {
	if c == nil {
		return nil
	}
	out := make([]Level, len(c.levels))
	for i, l := range c.levels {
		out[i] = l.clone()
	}
	return out
}
