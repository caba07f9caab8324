package core

import "testing"

// sillyWishesRows is the 15x15 lesson grid.
var sillyWishesRows = []string{
	"JKWZJPTTYRITYSC",
	"AXPNIDWRGSBNAXH",
	"KLWLUKXEUPTASBE",
	"TEKRAMREPUSRXRM",
	"VNNSALUSSPYUSOI",
	"XXEGENMMNEDAJCS",
	"PBIMIHOONHLTTOT",
	"PCTCNOSONHMSEOX",
	"TMOPROHIVDFELTH",
	"MRHHOWRFWZSRIFS",
	"NASECTSIROLFODX",
	"HUBEANSRVUWOTBI",
	"MSAUSAGESNICLZG",
	"PFSWLZBOSJETRRU",
	"HQPRUVISYQFKJDR",
}

var sillyWishesWords = []string{
	"ALMONDS", "BEANS", "CHEMIST", "FLORIST", "HONEY",
	"MAGIC", "MUSHROOMS", "RESTAURANT", "SAUSAGES",
	"SUPERMARKET", "TOILET", "TREES", "UNICORN", "WISHES",
}

// sillyWishesPaths holds the first and last cell of every word as dragged
// in reading order.
var sillyWishesPaths = map[string][2]Cell{
	"ALMONDS":     {At(3, 4), At(9, 10)},
	"BEANS":       {At(11, 2), At(11, 6)},
	"CHEMIST":     {At(0, 14), At(6, 14)},
	"FLORIST":     {At(10, 11), At(10, 5)},
	"HONEY":       {At(8, 6), At(4, 10)},
	"MAGIC":       {At(3, 5), At(7, 1)},
	"MUSHROOMS":   {At(12, 0), At(4, 8)},
	"RESTAURANT":  {At(9, 11), At(0, 11)},
	"SAUSAGES":    {At(12, 1), At(12, 8)},
	"SUPERMARKET": {At(3, 10), At(3, 0)},
	"TOILET":      {At(11, 12), At(6, 12)},
	"TREES":       {At(0, 7), At(4, 7)},
	"UNICORN":     {At(4, 6), At(10, 0)},
	"WISHES":      {At(9, 8), At(4, 3)},
}

func newSillyWishes(t *testing.T) *State {
	t.Helper()

	grid, err := NewGrid(sillyWishesRows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	words, err := NewWordList(sillyWishesWords)
	if err != nil {
		t.Fatalf("NewWordList failed: %v", err)
	}
	return NewState(grid, words)
}

// drag performs a full begin/extend/release gesture.
func drag(t *testing.T, s *State, from, to Cell) Result {
	t.Helper()

	if err := s.Begin(from); err != nil {
		t.Fatalf("Begin(%s) failed: %v", from, err)
	}
	s.Extend(to)
	return s.Release()
}
