package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

type styleKey struct {
	color core.Color
	attr  core.Attr
}

// cellStyles holds every color and attribute combination. It is filled once
// in init and only read afterwards, so SSH sessions can render concurrently.
var cellStyles = make(map[styleKey]lipgloss.Style)

func init() {
	const allAttrs = core.AttrBold | core.AttrReverse | core.AttrStrike | core.AttrUnderline
	for c, base := range colorStyles {
		for a := core.Attr(0); a <= allAttrs; a++ {
			cellStyles[styleKey{c, a}] = applyAttr(base, a)
		}
	}
}

func applyAttr(s lipgloss.Style, a core.Attr) lipgloss.Style {
	if a.Has(core.AttrBold) {
		s = s.Bold(true)
	}
	if a.Has(core.AttrReverse) {
		s = s.Reverse(true)
	}
	if a.Has(core.AttrStrike) {
		s = s.Strikethrough(true)
	}
	if a.Has(core.AttrUnderline) {
		s = s.Underline(true)
	}
	return s
}

func styleFor(c core.Color, a core.Attr) lipgloss.Style {
	if s, ok := cellStyles[styleKey{c, a}]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			color, attr := cell.Color, cell.Attr

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != color || cell.Attr != attr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(color, attr).Render(run.String()))
		}
	}
	return sb.String()
}
