package core

import (
	"fmt"
	"unicode"
)

// WordList is the ordered, duplicate-free set of words hidden in a puzzle.
type WordList struct {
	words []string
	index map[string]int
}

// NewWordList validates and stores the target words. Words must be non-empty,
// uppercase and unique.
func NewWordList(words []string) (*WordList, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidWordList)
	}

	wl := &WordList{
		words: make([]string, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: word %d is empty", ErrInvalidWordList, i)
		}
		for _, r := range w {
			if !unicode.IsUpper(r) {
				return nil, fmt.Errorf("%w: %q is not uppercase letters", ErrInvalidWordList, w)
			}
		}
		if _, dup := wl.index[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrInvalidWordList, w)
		}
		wl.index[w] = len(wl.words)
		wl.words = append(wl.words, w)
	}
	return wl, nil
}

// Len returns the number of words.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Words returns a copy of the words in their original order.
func (wl *WordList) Words() []string {
	out := make([]string, len(wl.words))
	copy(out, wl.words)
	return out
}

// Contains reports whether w is a target word.
func (wl *WordList) Contains(w string) bool {
	_, ok := wl.index[w]
	return ok
}

// Index returns the position of w in the list, or -1.
func (wl *WordList) Index(w string) int {
	if i, ok := wl.index[w]; ok {
		return i
	}
	return -1
}

// At returns the word at position i.
func (wl *WordList) At(i int) string {
	return wl.words[i]
}
