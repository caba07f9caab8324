package core

import (
	"fmt"
	"math/rand"
	"sort"
)

// Placement is where a generated puzzle hid a word.
type Placement struct {
	Word  string
	Start Cell
	Dir   Dir
}

// Cells returns the cells the word occupies, first letter first.
func (p Placement) Cells() Selection {
	n := len([]rune(p.Word))
	cells := make(Selection, n)
	for i := range n {
		cells[i] = p.Start.Step(p.Dir, i)
	}
	return cells
}

// GenParams configures puzzle generation.
type GenParams struct {
	Rows        int
	Cols        int
	Dirs        []Dir  // Allowed directions (default DirsNormal)
	Seed        int64  // RNG seed for reproducible grids
	MaxAttempts int    // Random placement tries per word before restarting
	MaxRestarts int    // Whole-grid restarts before giving up
	Alphabet    string // Letters used to fill empty cells
}

// DefaultGenParams returns sensible defaults for a 12x12 grid.
func DefaultGenParams() GenParams {
	return GenParams{
		Rows:        12,
		Cols:        12,
		Dirs:        DirsNormal,
		MaxAttempts: 200,
		MaxRestarts: 50,
		Alphabet:    "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	}
}

// Generate hides words in a fresh grid and fills the remaining cells with
// random letters. Placements are returned in the order of words.
func Generate(words []string, p GenParams) (*Grid, []Placement, error) {
	if p.Rows <= 0 || p.Cols <= 0 {
		return nil, nil, fmt.Errorf("%w: grid size %dx%d", ErrPlacement, p.Rows, p.Cols)
	}
	if len(p.Dirs) == 0 {
		p.Dirs = DirsNormal
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 200
	}
	if p.MaxRestarts <= 0 {
		p.MaxRestarts = 1
	}
	if p.Alphabet == "" {
		p.Alphabet = DefaultGenParams().Alphabet
	}

	if _, err := NewWordList(words); err != nil {
		return nil, nil, err
	}
	for _, w := range words {
		if n := len([]rune(w)); n > p.Rows && n > p.Cols {
			return nil, nil, fmt.Errorf("%w: %q does not fit in %dx%d", ErrPlacement, w, p.Rows, p.Cols)
		}
	}

	// Longest words first leaves the most room for them.
	order := make([]int, len(words))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len([]rune(words[order[a]])) > len([]rune(words[order[b]]))
	})

	rng := rand.New(rand.NewSource(p.Seed))

	for restart := 0; restart < p.MaxRestarts; restart++ {
		board := make([][]rune, p.Rows)
		for r := range board {
			board[r] = make([]rune, p.Cols)
		}

		placements := make([]Placement, len(words))
		ok := true
		for _, wi := range order {
			pl, placed := placeWord(board, words[wi], p, rng)
			if !placed {
				ok = false
				break
			}
			placements[wi] = pl
		}
		if !ok {
			continue
		}

		alphabet := []rune(p.Alphabet)
		rows := make([]string, p.Rows)
		for r := range board {
			for c := range board[r] {
				if board[r][c] == 0 {
					board[r][c] = alphabet[rng.Intn(len(alphabet))]
				}
			}
			rows[r] = string(board[r])
		}

		grid, err := NewGrid(rows)
		if err != nil {
			return nil, nil, err
		}
		return grid, placements, nil
	}

	return nil, nil, fmt.Errorf("%w: gave up after %d restarts", ErrPlacement, p.MaxRestarts)
}

// placeWord tries random starts and directions until the word fits.
func placeWord(board [][]rune, word string, p GenParams, rng *rand.Rand) (Placement, bool) {
	letters := []rune(word)
	for range p.MaxAttempts {
		d := p.Dirs[rng.Intn(len(p.Dirs))]
		start := Cell{Row: rng.Intn(p.Rows), Col: rng.Intn(p.Cols)}
		if !fits(board, letters, start, d) {
			continue
		}
		for i, r := range letters {
			c := start.Step(d, i)
			board[c.Row][c.Col] = r
		}
		return Placement{Word: word, Start: start, Dir: d}, true
	}
	return Placement{}, false
}

// fits reports whether letters can be written from start along d, sharing
// only cells that already hold the same letter.
func fits(board [][]rune, letters []rune, start Cell, d Dir) bool {
	rows, cols := len(board), len(board[0])
	for i, r := range letters {
		c := start.Step(d, i)
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return false
		}
		if cur := board[c.Row][c.Col]; cur != 0 && cur != r {
			return false
		}
	}
	return true
}

// Locate finds word in the grid along any of the 8 directions and returns
// its cells from first letter to last.
func Locate(grid *Grid, word string) (Selection, bool) {
	letters := []rune(word)
	if len(letters) == 0 {
		return nil, false
	}

	for r := range grid.Rows() {
		for c := range grid.Cols() {
			start := Cell{Row: r, Col: c}
			if grid.MustCharAt(start) != letters[0] {
				continue
			}
			for _, d := range DirsAll {
				if spells(grid, letters, start, d) {
					return Placement{Word: word, Start: start, Dir: d}.Cells(), true
				}
			}
		}
	}
	return nil, false
}

func spells(grid *Grid, letters []rune, start Cell, d Dir) bool {
	for i, want := range letters {
		c := start.Step(d, i)
		if !grid.InBounds(c) || grid.MustCharAt(c) != want {
			return false
		}
	}
	return true
}
