package core

import (
	"errors"
	"slices"
	"testing"
)

var forestWords = []string{"HONEY", "BEANS", "MUSHROOMS", "FRUIT", "SAUSAGES", "ALMONDS", "COOKIES"}

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultGenParams()
	p.Seed = 42

	g1, pl1, err := Generate(forestWords, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g2, pl2, err := Generate(forestWords, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !slices.Equal(g1.Lines(), g2.Lines()) {
		t.Error("same seed should produce the same grid")
	}
	if !slices.Equal(pl1, pl2) {
		t.Error("same seed should produce the same placements")
	}
}

func TestGeneratePlacementsSpellWords(t *testing.T) {
	p := DefaultGenParams()
	p.Seed = 7
	p.Dirs = DirsAll

	grid, placements, err := Generate(forestWords, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if grid.Rows() != p.Rows || grid.Cols() != p.Cols {
		t.Fatalf("grid is %dx%d", grid.Rows(), grid.Cols())
	}

	for i, pl := range placements {
		if pl.Word != forestWords[i] {
			t.Errorf("placement %d is %q, want %q", i, pl.Word, forestWords[i])
		}
		spelled, err := grid.Spell(pl.Cells())
		if err != nil {
			t.Fatalf("Spell(%s) failed: %v", pl.Word, err)
		}
		if spelled != pl.Word {
			t.Errorf("placement spells %q, want %q", spelled, pl.Word)
		}
		if _, ok := Locate(grid, pl.Word); !ok {
			t.Errorf("Locate could not find %q", pl.Word)
		}
	}
}

func TestGenerateIsSolvable(t *testing.T) {
	p := DefaultGenParams()
	p.Seed = 99

	grid, placements, err := Generate(forestWords, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	words, _ := NewWordList(forestWords)
	s := NewState(grid, words)

	for _, pl := range placements {
		cells := pl.Cells()
		res := drag(t, s, cells.First(), cells.Last())
		if res.Outcome != OutcomeMatch {
			t.Fatalf("dragging %s = %v", pl.Word, res.Outcome)
		}
	}
	if !s.IsComplete() {
		t.Error("dragging every placement should complete the puzzle")
	}
}

func TestGenerateRespectsDirections(t *testing.T) {
	p := DefaultGenParams()
	p.Seed = 3
	p.Dirs = DirsEasy

	_, placements, err := Generate(forestWords, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, pl := range placements {
		if !slices.Contains(DirsEasy, pl.Dir) {
			t.Errorf("%s placed along %v, not an easy direction", pl.Word, pl.Dir)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		words  []string
		rows   int
		cols   int
		target error
	}{
		{"word too long", []string{"SUPERMARKET"}, 5, 5, ErrPlacement},
		{"zero size", []string{"AB"}, 0, 5, ErrPlacement},
		{"lowercase word", []string{"honey"}, 10, 10, ErrInvalidWordList},
		{"duplicate word", []string{"HONEY", "HONEY"}, 10, 10, ErrInvalidWordList},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultGenParams()
			p.Rows, p.Cols = tc.rows, tc.cols

			_, _, err := Generate(tc.words, p)
			if !errors.Is(err, tc.target) {
				t.Errorf("Generate error = %v, want %v", err, tc.target)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	grid, _ := NewGrid(sillyWishesRows)

	for word, path := range sillyWishesPaths {
		cells, ok := Locate(grid, word)
		if !ok {
			t.Errorf("Locate(%s) failed", word)
			continue
		}
		forward := Line(path[0], path[1])
		if !cells.Equal(forward) {
			t.Errorf("Locate(%s) = %v, want %v", word, cells, forward)
		}
	}

	if _, ok := Locate(grid, "ZEBRA"); ok {
		t.Error("ZEBRA should not be in the grid")
	}
}

func TestParseDirs(t *testing.T) {
	dirs, err := ParseDirs([]string{"right", "down", "right", "up_left"})
	if err != nil {
		t.Fatalf("ParseDirs() failed: %v", err)
	}
	want := []Dir{DirRight, DirDown, DirUpLeft}
	if !slices.Equal(dirs, want) {
		t.Errorf("ParseDirs() = %v, want %v", dirs, want)
	}

	if _, err := ParseDirs([]string{"sideways"}); err == nil {
		t.Error("unknown direction should fail")
	}
}
