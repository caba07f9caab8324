package core

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors returned by the engine.
var (
	ErrOutOfBounds     = errors.New("wordsearch: cell out of bounds")
	ErrInvalidGrid     = errors.New("wordsearch: invalid grid")
	ErrInvalidWordList = errors.New("wordsearch: invalid word list")
	ErrPlacement       = errors.New("wordsearch: cannot place words")
)

// OutOfBoundsError reports a lookup outside the grid extent.
// It matches ErrOutOfBounds with errors.Is.
type OutOfBoundsError struct {
	Cell Cell
	Rows int
	Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("wordsearch: cell %s outside %dx%d grid", e.Cell, e.Rows, e.Cols)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Grid is an immutable rectangular matrix of uppercase letters.
// Letters are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows    int
	cols    int
	letters []rune
}

// NewGrid builds a grid from its rows. Every row must have the same length
// and contain only uppercase letters.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}

	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidGrid)
	}

	letters := make([]rune, 0, len(rows)*cols)
	for i, row := range rows {
		rs := []rune(row)
		if len(rs) != cols {
			return nil, fmt.Errorf("%w: row %d has %d letters, want %d", ErrInvalidGrid, i, len(rs), cols)
		}
		for j, r := range rs {
			if !unicode.IsUpper(r) {
				return nil, fmt.Errorf("%w: row %d col %d is %q, want an uppercase letter", ErrInvalidGrid, i, j, r)
			}
		}
		letters = append(letters, rs...)
	}

	return &Grid{rows: len(rows), cols: cols, letters: letters}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds returns true if the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// CharAt returns the letter at (row, col).
func (g *Grid) CharAt(row, col int) (rune, error) {
	c := Cell{Row: row, Col: col}
	if !g.InBounds(c) {
		return 0, &OutOfBoundsError{Cell: c, Rows: g.rows, Cols: g.cols}
	}
	return g.letters[row*g.cols+col], nil
}

// MustCharAt is CharAt for callers that already checked bounds.
// It panics on an out-of-bounds cell instead of clamping.
func (g *Grid) MustCharAt(c Cell) rune {
	r, err := g.CharAt(c.Row, c.Col)
	if err != nil {
		panic(err)
	}
	return r
}

// Row returns row i as a string.
func (g *Grid) Row(i int) string {
	if i < 0 || i >= g.rows {
		return ""
	}
	return string(g.letters[i*g.cols : (i+1)*g.cols])
}

// Lines returns all rows as strings.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for i := range lines {
		lines[i] = g.Row(i)
	}
	return lines
}

// Spell concatenates the letters under the given cells in order.
func (g *Grid) Spell(cells []Cell) (string, error) {
	rs := make([]rune, 0, len(cells))
	for _, c := range cells {
		r, err := g.CharAt(c.Row, c.Col)
		if err != nil {
			return "", err
		}
		rs = append(rs, r)
	}
	return string(rs), nil
}
