package core

import (
	"errors"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr bool
	}{
		{"valid", []string{"AB", "CD"}, false},
		{"no rows", nil, true},
		{"empty row", []string{""}, true},
		{"ragged", []string{"ABC", "DE"}, true},
		{"lowercase", []string{"AB", "cD"}, true},
		{"digit", []string{"A1"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.rows)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewGrid(%v) error = %v, wantErr %v", tc.rows, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("error %v should wrap ErrInvalidGrid", err)
			}
		})
	}
}

func TestGridCharAt(t *testing.T) {
	grid, err := NewGrid(sillyWishesRows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if grid.Rows() != 15 || grid.Cols() != 15 {
		t.Fatalf("expected 15x15, got %dx%d", grid.Rows(), grid.Cols())
	}

	r, err := grid.CharAt(0, 0)
	if err != nil || r != 'J' {
		t.Errorf("CharAt(0, 0) = %q, %v; want 'J'", r, err)
	}
	r, err = grid.CharAt(14, 14)
	if err != nil || r != 'R' {
		t.Errorf("CharAt(14, 14) = %q, %v; want 'R'", r, err)
	}

	if got := grid.Row(0); got != "JKWZJPTTYRITYSC" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestGridCharAtOutOfBounds(t *testing.T) {
	grid, err := NewGrid([]string{"AB", "CD"})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	for _, c := range []Cell{At(-1, 0), At(0, -1), At(2, 0), At(0, 2)} {
		_, err := grid.CharAt(c.Row, c.Col)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CharAt(%s) error = %v, want ErrOutOfBounds", c, err)
		}

		var oob *OutOfBoundsError
		if !errors.As(err, &oob) || oob.Cell != c {
			t.Errorf("CharAt(%s) should return *OutOfBoundsError for that cell", c)
		}
	}
}

func TestGridMustCharAtPanics(t *testing.T) {
	grid, _ := NewGrid([]string{"AB"})

	defer func() {
		if recover() == nil {
			t.Error("MustCharAt should panic out of bounds")
		}
	}()
	grid.MustCharAt(At(5, 5))
}

func TestNewWordListValidation(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		wantErr bool
	}{
		{"valid", []string{"TREES", "HONEY"}, false},
		{"single letter", []string{"A"}, false},
		{"empty list", nil, true},
		{"empty word", []string{"TREES", ""}, true},
		{"lowercase", []string{"Trees"}, true},
		{"duplicate", []string{"TREES", "TREES"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWordList(tc.words)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewWordList(%v) error = %v, wantErr %v", tc.words, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidWordList) {
				t.Errorf("error %v should wrap ErrInvalidWordList", err)
			}
		})
	}
}

func TestWordListOrder(t *testing.T) {
	wl, err := NewWordList(sillyWishesWords)
	if err != nil {
		t.Fatalf("NewWordList failed: %v", err)
	}

	if wl.Len() != 14 {
		t.Errorf("Len() = %d, want 14", wl.Len())
	}
	if wl.Index("TREES") != 11 {
		t.Errorf("Index(TREES) = %d, want 11", wl.Index("TREES"))
	}
	if wl.Index("NOPE") != -1 {
		t.Error("Index of unknown word should be -1")
	}

	words := wl.Words()
	words[0] = "CHANGED"
	if wl.At(0) != "ALMONDS" {
		t.Error("Words() must return a copy")
	}
}
