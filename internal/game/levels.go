package game

import "github.com/vovakirdan/brickstorm/internal/geom"

// LevelSet holds the brick layouts for successive levels.
// Levels are addressed 1-based, matching what players see.
type LevelSet struct {
	layouts [][]string
}

// NewLevelSet creates a level set from ASCII layouts. The rows are copied,
// so mutating the argument afterwards does not affect the set.
func NewLevelSet(layouts [][]string) *LevelSet {
	s := &LevelSet{layouts: make([][]string, len(layouts))}
	for i, rows := range layouts {
		s.layouts[i] = make([]string, len(rows))
		copy(s.layouts[i], rows)
	}
	return s
}

// Count returns the number of levels in the set.
func (s *LevelSet) Count() int {
	return len(s.layouts)
}

// Has reports whether the 1-based level index exists in the set.
func (s *LevelSet) Has(level int) bool {
	return level >= 1 && level <= len(s.layouts)
}

// Layout returns the raw ASCII rows of a level, or nil for an unknown level.
func (s *LevelSet) Layout(level int) []string {
	if !s.Has(level) {
		return nil
	}
	return s.layouts[level-1]
}

// MaxColumns returns the widest row of a level, in cells.
func (s *LevelSet) MaxColumns(level int) int {
	if !s.Has(level) {
		return 0
	}
	maxCols := 0
	for _, row := range s.layouts[level-1] {
		if n := len([]rune(row)); n > maxCols {
			maxCols = n
		}
	}
	return maxCols
}

// Build instantiates the bricks of a level on a grid with the given cell
// size, anchored at (offsetX, offsetY). Spaces and unknown symbols yield
// no brick. Unknown levels yield an empty field.
func (s *LevelSet) Build(level int, brickWidth, brickHeight, offsetX, offsetY float64) []Brick {
	if !s.Has(level) {
		return nil
	}
	var bricks []Brick
	for r, row := range s.layouts[level-1] {
		for c, symbol := range []rune(row) {
			cell := geom.Rect{
				X: offsetX + float64(c)*brickWidth,
				Y: offsetY + float64(r)*brickHeight,
				W: brickWidth,
				H: brickHeight,
			}
			brick, ok := BrickFromSymbol(symbol, cell)
			if !ok {
				continue
			}
			bricks = append(bricks, brick)
		}
	}
	return bricks
}

// DefaultLayouts returns the built-in three-level campaign.
// Symbols:
//
//	'@' = normal brick, one hit
//	'#' = durable brick, two hits
//	'*' = indestructible brick
func DefaultLayouts() [][]string {
	return [][]string{
		// Level 1: warm-up rows around an indestructible core
		{
			"@@@@@@@@@@@@",
			"@#@#@#@#@#@#",
			"@@@@@***@@@@",
		},
		// Level 2: durable stripes with indestructible posts
		{
			"@@@***@@@***",
			"@#@#@#@#@#@#",
			"@@@@@@@@@@@@",
			"@#@#@#@#@#@#",
			"@@@***@@@***",
		},
		// Level 3: walled-in pattern
		{
			"*@@@@@@@@@@*",
			"@#########@",
			"@@@@@@@@@@@@",
			"@##*##*##*@",
			"*@@@@@@@@@@*",
		},
	}
}
