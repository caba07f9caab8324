package core

// FoundWord records a matched word and the cells that spell it, in the order
// the player dragged them.
type FoundWord struct {
	Word  string
	Cells Selection
}

// FoundSet answers whether a word has already been found.
type FoundSet interface {
	IsFound(word string) bool
}

// Evaluate checks whether sel spells an unfound word, reading it forwards
// first and then backwards. Only an exact full-length match counts.
func Evaluate(grid *Grid, words *WordList, found FoundSet, sel Selection) (FoundWord, bool) {
	if sel.Empty() {
		return FoundWord{}, false
	}

	forward, err := grid.Spell(sel)
	if err != nil {
		return FoundWord{}, false
	}

	for _, candidate := range []string{forward, reverseString(forward)} {
		if words.Contains(candidate) && !found.IsFound(candidate) {
			return FoundWord{Word: candidate, Cells: sel.Clone()}, true
		}
	}
	return FoundWord{}, false
}

func reverseString(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}
