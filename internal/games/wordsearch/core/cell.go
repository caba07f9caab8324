// Package core implements the word search puzzle engine: the letter grid,
// straight-line drag selection, match evaluation and completion tracking.
// It has no dependency on the terminal platform so it can be driven from
// any input source and tested in isolation.
package core

import "fmt"

// Cell is a (row, col) position on the grid. Both are 0-indexed.
type Cell struct {
	Row int
	Col int
}

// At is a convenience constructor for Cell.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns the cell i steps along d.
func (c Cell) Step(d Dir, i int) Cell {
	return c.Add(d.DR*i, d.DC*i)
}

// Dir is a unit step along one of the 8 compass directions.
type Dir struct {
	DR int
	DC int
}

// The eight compass directions.
var (
	DirRight     = Dir{0, 1}
	DirLeft      = Dir{0, -1}
	DirDown      = Dir{1, 0}
	DirUp        = Dir{-1, 0}
	DirDownRight = Dir{1, 1}
	DirDownLeft  = Dir{1, -1}
	DirUpRight   = Dir{-1, 1}
	DirUpLeft    = Dir{-1, -1}
)

// Direction sets used by the generator. Easy puzzles only read left-to-right
// and top-to-bottom; hard puzzles may hide words backwards.
var (
	DirsEasy   = []Dir{DirRight, DirDown}
	DirsNormal = []Dir{DirRight, DirDown, DirDownRight, DirUpRight}
	DirsAll    = []Dir{DirRight, DirLeft, DirDown, DirUp, DirDownRight, DirDownLeft, DirUpRight, DirUpLeft}
)

var dirNames = map[string]Dir{
	"right":      DirRight,
	"left":       DirLeft,
	"down":       DirDown,
	"up":         DirUp,
	"down_right": DirDownRight,
	"down_left":  DirDownLeft,
	"up_right":   DirUpRight,
	"up_left":    DirUpLeft,
}

// ParseDirs maps direction names such as "down_right" to directions.
// Duplicates are dropped.
func ParseDirs(names []string) ([]Dir, error) {
	dirs := make([]Dir, 0, len(names))
	seen := make(map[Dir]bool, len(names))
	for _, n := range names {
		d, ok := dirNames[n]
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", n)
		}
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	return dirs, nil
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
