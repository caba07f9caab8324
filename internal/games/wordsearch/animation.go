package wordsearch

import (
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	wscore "github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/core"
)

// Flight is one letter travelling from the grid to its word in the list.
type Flight struct {
	Letter rune
	From   wscore.Cell // Grid cell the letter leaves
	Word   int         // Index of the word in the list
	Index  int         // Letter position within the word
	Delay  int         // Ticks before the letter starts moving
	Age    int         // Ticks since the flight was created
}

// progress returns how far the letter has travelled, 0 to 1.
func (f Flight) progress(duration int) float64 {
	if f.Age <= f.Delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return min(float64(f.Age-f.Delay)/float64(duration), 1)
}

// done reports whether the letter has landed.
func (f Flight) done(duration int) bool {
	return f.Age >= f.Delay+duration
}

// startFlights launches one flight per letter of a found word, staggered
// so the word streams into the list first letter first.
func (g *Game) startFlights(fw wscore.FoundWord) {
	grid := g.state.Grid()
	word := g.state.Words().Index(fw.Word)

	// Cells come in drag order; walk them in word order so letter i lands
	// at position i of the list entry.
	cells := fw.Cells
	if s, err := grid.Spell(cells); err == nil && s != fw.Word {
		cells = cells.Reversed()
	}
	for i, c := range cells {
		g.flights = append(g.flights, Flight{
			Letter: grid.MustCharAt(c),
			From:   c,
			Word:   word,
			Index:  i,
			Delay:  i * g.cfg.Animation.StaggerTicks,
		})
	}
}

// startMissFlash marks a rejected selection for a short red flash.
func (g *Game) startMissFlash(sel wscore.Selection) {
	g.missCells = sel.Clone()
	g.missTicks = g.cfg.Animation.MissTicks
}

// updateAnimations advances flights and the miss flash by one tick.
func (g *Game) updateAnimations() {
	if g.missTicks > 0 {
		g.missTicks--
		if g.missTicks == 0 {
			g.missCells = nil
		}
	}

	duration := g.cfg.Animation.FlightTicks
	kept := g.flights[:0]
	for _, f := range g.flights {
		f.Age++
		if !f.done(duration) {
			kept = append(kept, f)
		}
	}
	g.flights = kept
}

// Flights returns the letters currently in the air.
func (g *Game) Flights() []Flight {
	return append([]Flight(nil), g.flights...)
}

// position returns the screen position of a flying letter.
func (f Flight) position(l Layout, duration int) (int, int) {
	fromX, fromY := l.CellCenter(f.From)
	toX, toY := l.EntryPos(f.Word)
	toX += f.Index

	t := easeOutQuad(f.progress(duration))
	return core.Lerp(fromX, toX, t), core.Lerp(fromY, toY, t)
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
