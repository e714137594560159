package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LoadDir recursively scans dir for level files and builds a catalog.
// A file may hold a `levels:` list or a single level. Unlike the built-in
// catalog, any invalid file fails the whole load so that a typo is never
// silently turned into a missing level.
func LoadDir(dir string) (*Catalog, error) {
	var all []Level

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(FormatExtensions(), ext) {
			return nil
		}

		lvls, err := LoadFile(path)
		if err != nil {
			return err
		}
		all = append(all, lvls...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: loading %s: %w", dir, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("levels: no level files in %s", dir)
	}

	return New(all)
}

// LoadFile loads the levels held by a single file.
func LoadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvls, err := parseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	for i := range lvls {
		lvls[i].FilePath = path
	}
	return lvls, nil
}
