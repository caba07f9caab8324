package wordsearch

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	wscore "github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/core"
)

// VictoryMessage is shown when every word has been found.
const VictoryMessage = "AWESOME! You found all the words!"

// foundPalette colors found words in the order they were found.
var foundPalette = []core.Color{
	core.ColorGreen,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorBrightBlue,
	core.ColorOrange,
	core.ColorBrightGreen,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderError(dst)
		return
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderWordList(dst)
	g.renderFlights(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderError shows why no puzzle could be loaded.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawStyledCentered(y-1, "Could not load puzzle", core.ColorRed, core.AttrBold)
	dst.DrawTextCentered(y, g.loadErr.Error())
	dst.DrawStyledCentered(y+2, "Press Esc to go back", core.ColorGray, 0)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the puzzle name, progress and timer above the grid.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawStyledCentered(0, g.puzzle.Name, core.ColorBrightWhite, core.AttrBold)

	frame := g.layout.Frame()
	found, total := g.state.Progress()
	dst.DrawText(frame.X, 1, fmt.Sprintf("Found %d/%d", found, total))

	if g.cfg.Layout.ShowTimer {
		timer := FormatElapsed(g.elapsed)
		dst.DrawText(frame.Right()-len(timer), 1, timer)
	}
}

// renderGrid draws the framed letter grid with its highlights.
func (g *Game) renderGrid(dst *core.Screen) {
	dst.DrawBox(g.layout.Frame(), core.ColorGray)

	owner := make(map[wscore.Cell]int)
	for i, fw := range g.state.Found() {
		for _, c := range fw.Cells {
			owner[c] = i
		}
	}
	selection := g.state.Selection()
	showCursor := g.cfg.Layout.ShowCursor && !g.usedPointer && !g.completed

	grid := g.state.Grid()
	for r := range grid.Rows() {
		for c := range grid.Cols() {
			cell := wscore.At(r, c)
			color, attr := core.ColorWhite, core.Attr(0)

			if i, ok := owner[cell]; ok {
				color, attr = foundPalette[i%len(foundPalette)], core.AttrBold
			}
			if showCursor && cell == g.cursor {
				color, attr = core.ColorCyan, core.AttrReverse
			}
			if g.missTicks > 0 && g.missCells.Contains(cell) {
				color, attr = core.ColorRed, core.AttrReverse
			}
			if selection.Contains(cell) {
				color, attr = core.ColorYellow, core.AttrReverse|core.AttrBold
			}

			g.drawCell(dst, cell, grid.MustCharAt(cell), color, attr)
		}
	}
}

// drawCell paints one cell. Reverse-video cells are filled edge to edge so
// a selected line reads as one bar.
func (g *Game) drawCell(dst *core.Screen, cell wscore.Cell, letter rune, color core.Color, attr core.Attr) {
	rect := g.layout.CellRect(cell)
	cx, cy := g.layout.CellCenter(cell)
	if attr.Has(core.AttrReverse) {
		for x := rect.X; x < rect.Right(); x++ {
			dst.SetCell(x, cy, core.Cell{Rune: ' ', Color: color, Attr: attr})
		}
	}
	dst.SetCell(cx, cy, core.Cell{Rune: letter, Color: color, Attr: attr})
}

// renderWordList draws the words to find. Found words are struck through.
func (g *Game) renderWordList(dst *core.Screen) {
	for i, w := range g.state.Words().Words() {
		x, y := g.layout.EntryPos(i)
		if g.state.IsFound(w) {
			dst.SetColor(x-markerWidth, y, '✓', core.ColorGreen)
			dst.DrawStyled(x, y, w, core.ColorGray, core.AttrStrike)
			continue
		}
		dst.DrawText(x, y, w)
	}
}

// renderFlights draws letters travelling from the grid to the list.
func (g *Game) renderFlights(dst *core.Screen) {
	for _, f := range g.flights {
		x, y := f.position(g.layout, g.cfg.Animation.FlightTicks)
		dst.SetCell(x, y, core.Cell{Rune: f.Letter, Color: core.ColorBrightYellow, Attr: core.AttrBold})
	}
}

// renderFooter draws the key help on the last line.
func (g *Game) renderFooter(dst *core.Screen) {
	dst.DrawStyledCentered(g.screenH-1, g.Controls(), core.ColorGray, 0)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx, cy := g.layout.Frame().Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, core.ColorYellow, "PAUSED", "Press P to resume")
		return
	}

	if g.completed {
		g.drawOverlay(dst, cx, cy, core.ColorBrightGreen,
			VictoryMessage,
			"Time "+FormatElapsed(g.elapsed),
			"R: Play again | Esc: Menu")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawStyled(x, box.Y+1+i, line, c, core.AttrBold)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Drag/Space: Select | +/-: Zoom | P: Pause | R: Replay | Esc: Menu"
}

// FormatElapsed renders a duration as MM:SS, or H:MM:SS past an hour.
func FormatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
