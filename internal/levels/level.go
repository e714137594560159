package levels

import "github.com/vovakirdan/cyberpath/internal/core"

// Level is the static definition of one stage.
type Level struct {
	Index      int
	Name       string
	TimeLimit  float64 // seconds
	Coins      int
	Enemies    int
	Hazards    int
	Background core.Color
	Platforms  []core.Rect // Platforms[0] is the ground lane
	FilePath   string      // empty for built-in levels
}

// Elevated returns every platform of a level layout except the ground lane.
func Elevated(platforms []core.Rect) []core.Rect {
	if len(platforms) < 2 {
		return nil
	}
	return platforms[1:]
}

// clone returns a copy whose platform slice is not shared with the catalog.
func (l Level) clone() Level {
	l.Platforms = append([]core.Rect(nil), l.Platforms...)
	return l
}
