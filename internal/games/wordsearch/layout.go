package wordsearch

import (
	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	wscore "github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/core"
)

const (
	hudHeight    = 2 // Title and status lines
	footerHeight = 1 // Key help
	markerWidth  = 2 // "✓ " in front of each word
	listColGap   = 2 // Between word list columns when the list is below the grid
)

type point struct {
	X, Y int
}

// Layout places the grid, its frame and the word list on the screen.
// It resolves pointer coordinates to grid cells.
type Layout struct {
	Grid      core.Rect // Letter area: one line per row, CellW columns per cell
	CellW     int
	Rows      int
	Cols      int
	ListBelow bool

	entries []point // Screen position of each word's first letter
}

// ComputeLayout fits a rows x cols grid and its word list on the screen.
// The requested zoom is the preferred cell width; narrower cells down to
// minZoom are tried before giving up. ok is false when nothing fits.
func ComputeLayout(screenW, screenH, rows, cols int, words []string, zoom, minZoom int, lc config.LayoutConfig) (Layout, bool) {
	minZoom = max(minZoom, 1)
	for w := max(zoom, minZoom); w >= minZoom; w-- {
		if l, ok := fitLayout(screenW, screenH, rows, cols, w, words, lc); ok {
			return l, true
		}
	}
	return Layout{}, false
}

func fitLayout(screenW, screenH, rows, cols, cellW int, words []string, lc config.LayoutConfig) (Layout, bool) {
	gridW := cols * cellW
	boxW, boxH := gridW+2, rows+2
	top := hudHeight
	bottom := screenH - footerHeight

	longest := 0
	for _, w := range words {
		longest = max(longest, len([]rune(w)))
	}
	entryW := markerWidth + longest
	listW := max(entryW, lc.MinWordListWidth)

	if top+boxH > bottom || boxW > screenW {
		return Layout{}, false
	}

	l := Layout{CellW: cellW, Rows: rows, Cols: cols}

	// Word list to the right of the grid.
	if total := boxW + lc.WordListGap + listW; total <= screenW && top+1+len(words) <= bottom {
		x0 := (screenW - total) / 2
		l.Grid = core.NewRect(x0+1, top+1, gridW, rows)
		listX := x0 + boxW + lc.WordListGap + markerWidth
		for i := range words {
			l.entries = append(l.entries, point{listX, l.Grid.Y + i})
		}
		return l, true
	}

	// Word list in columns under the grid.
	colW := entryW + listColGap
	if entryW > screenW {
		return Layout{}, false
	}
	perRow := max(1, (screenW+listColGap)/colW)
	perCol := max(1, (len(words)+perRow-1)/perRow)
	listTop := top + boxH + 1
	if listTop+perCol > bottom {
		return Layout{}, false
	}
	used := (len(words) + perCol - 1) / perCol
	listX := (screenW-(used*colW-listColGap))/2 + markerWidth

	l.ListBelow = true
	l.Grid = core.NewRect((screenW-boxW)/2+1, top+1, gridW, rows)
	for i := range words {
		l.entries = append(l.entries, point{listX + (i/perCol)*colW, listTop + i%perCol})
	}
	return l, true
}

// HitTest maps a screen position to the grid cell under it.
func (l Layout) HitTest(x, y int) (wscore.Cell, bool) {
	if l.CellW <= 0 || !l.Grid.Contains(x, y) {
		return wscore.Cell{}, false
	}
	return wscore.At(y-l.Grid.Y, (x-l.Grid.X)/l.CellW), true
}

// CellRect returns the screen area of a cell.
func (l Layout) CellRect(c wscore.Cell) core.Rect {
	return core.NewRect(l.Grid.X+c.Col*l.CellW, l.Grid.Y+c.Row, l.CellW, 1)
}

// CellCenter returns the column and line where a cell's letter is drawn.
func (l Layout) CellCenter(c wscore.Cell) (int, int) {
	r := l.CellRect(c)
	return r.X + l.CellW/2, r.Y
}

// Frame returns the rectangle of the border drawn around the grid.
func (l Layout) Frame() core.Rect {
	return core.NewRect(l.Grid.X-1, l.Grid.Y-1, l.Grid.W+2, l.Grid.H+2)
}

// EntryPos returns where the i-th word of the list starts.
func (l Layout) EntryPos(i int) (int, int) {
	if i < 0 || i >= len(l.entries) {
		return 0, 0
	}
	p := l.entries[i]
	return p.X, p.Y
}
