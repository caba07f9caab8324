// Package puzzles provides puzzle loading for the word search game.
// This package depends on core but core does not depend on puzzles.
package puzzles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/core"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by LoadByID for an unknown puzzle ID.
var ErrNotFound = errors.New("puzzles: puzzle not found")

// Puzzle is a fixed grid with the words hidden in it.
type Puzzle struct {
	ID          string
	Name        string
	Description string
	Rows        []string
	Words       []string
	FilePath    string // "embed:<name>" for built-in puzzles
}

// yamlPuzzle is the on-disk shape of a puzzle file.
type yamlPuzzle struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Rows        []string `yaml:"rows"`
	Words       []string `yaml:"words"`
}

// Parse decodes a YAML puzzle. Rows and words are trimmed and upper-cased
// so hand-written files may use any case.
func Parse(data []byte) (Puzzle, error) {
	var yp yamlPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Puzzle{}, fmt.Errorf("puzzles: yaml unmarshal: %w", err)
	}
	if yp.ID == "" {
		return Puzzle{}, errors.New("puzzles: missing id")
	}

	p := Puzzle{
		ID:          yp.ID,
		Name:        yp.Name,
		Description: yp.Description,
		Rows:        normalize(yp.Rows),
		Words:       normalize(yp.Words),
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	return p, nil
}

func normalize(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(strings.TrimSpace(s))
	}
	return out
}

// Build returns the engine grid and word list for the puzzle.
func (p *Puzzle) Build() (*core.Grid, *core.WordList, error) {
	grid, err := core.NewGrid(p.Rows)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzles: %s: %w", p.ID, err)
	}
	words, err := core.NewWordList(p.Words)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzles: %s: %w", p.ID, err)
	}
	return grid, words, nil
}

// Validate checks the grid and word list and that every word can be found
// in the grid along one of the eight directions.
func (p *Puzzle) Validate() error {
	grid, words, err := p.Build()
	if err != nil {
		return err
	}

	var missing []string
	for _, w := range words.Words() {
		if _, ok := core.Locate(grid, w); !ok {
			missing = append(missing, w)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("puzzles: %s: words not in grid: %s", p.ID, strings.Join(missing, ", "))
	}
	return nil
}

// NewState creates a fresh game over the puzzle.
func (p *Puzzle) NewState() (*core.State, error) {
	grid, words, err := p.Build()
	if err != nil {
		return nil, err
	}
	return core.NewState(grid, words), nil
}

// Size returns the grid dimensions as "ROWSxCOLS".
func (p *Puzzle) Size() string {
	if len(p.Rows) == 0 {
		return "0x0"
	}
	return fmt.Sprintf("%dx%d", len(p.Rows), len([]rune(p.Rows[0])))
}
