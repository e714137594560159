package levels

import (
	"fmt"

	"github.com/vovakirdan/cyberpath/internal/core"
	"gopkg.in/yaml.v3"
)

// yamlLevel represents the YAML structure of a single level.
type yamlLevel struct {
	Index      int         `yaml:"index"`
	Name       string      `yaml:"name"`
	TimeLimit  float64     `yaml:"time_limit"`
	Coins      int         `yaml:"coins"`
	Enemies    int         `yaml:"enemies"`
	Hazards    int         `yaml:"hazards"`
	Background []uint8     `yaml:"background,omitempty"`
	Platforms  [][]float64 `yaml:"platforms"`
}

// yamlCatalog is a file holding several levels.
type yamlCatalog struct {
	Levels []yamlLevel `yaml:"levels"`
}

// parseDocument decodes either a `levels:` list or a single level document.
func parseDocument(data []byte) ([]Level, error) {
	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	raw := doc.Levels
	if len(raw) == 0 {
		var single yamlLevel
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		if single.Index == 0 && single.Name == "" {
			return nil, fmt.Errorf("document holds no levels")
		}
		raw = []yamlLevel{single}
	}

	out := make([]Level, 0, len(raw))
	for _, yl := range raw {
		lvl, err := yl.toLevel()
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, nil
}

func (yl yamlLevel) toLevel() (Level, error) {
	if yl.Index < 1 {
		return Level{}, fmt.Errorf("level %q: index must be >= 1, got %d", yl.Name, yl.Index)
	}
	if yl.TimeLimit <= 0 {
		return Level{}, fmt.Errorf("level %d: time_limit must be positive", yl.Index)
	}
	if yl.Coins < 0 || yl.Enemies < 0 || yl.Hazards < 0 {
		return Level{}, fmt.Errorf("level %d: entity counts must be non-negative", yl.Index)
	}

	lvl := Level{
		Index:     yl.Index,
		Name:      yl.Name,
		TimeLimit: yl.TimeLimit,
		Coins:     yl.Coins,
		Enemies:   yl.Enemies,
		Hazards:   yl.Hazards,
		Platforms: make([]core.Rect, 0, len(yl.Platforms)),
	}
	if lvl.Name == "" {
		lvl.Name = fmt.Sprintf("Level %d", yl.Index)
	}

	switch len(yl.Background) {
	case 0:
	case 3:
		lvl.Background = core.RGB(yl.Background[0], yl.Background[1], yl.Background[2])
	default:
		return Level{}, fmt.Errorf("level %d: background needs 3 components, got %d", yl.Index, len(yl.Background))
	}

	for i, p := range yl.Platforms {
		if len(p) != 4 {
			return Level{}, fmt.Errorf("level %d: platform %d needs [x, y, w, h], got %d values", yl.Index, i, len(p))
		}
		if p[2] <= 0 || p[3] <= 0 {
			return Level{}, fmt.Errorf("level %d: platform %d has non-positive size", yl.Index, i)
		}
		lvl.Platforms = append(lvl.Platforms, core.NewRect(p[0], p[1], p[2], p[3]))
	}

	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
