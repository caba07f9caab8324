package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

// MenuItem represents a selectable entry in the menu: a fixed puzzle or the
// random puzzle generator.
type MenuItem struct {
	GameID   string
	PuzzleID string // Empty for the generator entry
	Title    string
	Detail   string
}

// Random reports whether the item starts a generated puzzle.
func (it MenuItem) Random() bool {
	return it.GameID == wordsearch.IDRandom
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// menuChrome is the number of lines used around the item list.
const menuChrome = 9

// MenuModel is the Bubble Tea model for the puzzle picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	offset         int // First visible item
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	loadErr        error
	quitting       bool
	selected       *MenuItem // Set when user selects a puzzle
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing every loadable puzzle.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items, err := menuItems(store)
	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		loadErr:   err,
	}
}

// menuItems builds the puzzle entries followed by the generator entry.
func menuItems(store *storage.Store) ([]MenuItem, error) {
	var stats map[string]*storage.PuzzleStats
	if store != nil {
		// Missing stats only hide the best times
		stats, _ = store.AllPuzzleStats()
	}

	list, err := wordsearch.PuzzleLoader().LoadAll()
	items := make([]MenuItem, 0, len(list)+1)
	for _, p := range list {
		detail := fmt.Sprintf("%s, %d words", p.Size(), len(p.Words))
		if ps, ok := stats[p.ID]; ok && ps.Plays > 0 {
			detail += fmt.Sprintf(", best %s, %s", wordsearch.FormatElapsed(ps.BestTime), humanize.Time(ps.LastPlayed))
		}
		items = append(items, MenuItem{
			GameID:   wordsearch.IDFixed,
			PuzzleID: p.ID,
			Title:    p.Name,
			Detail:   detail,
		})
	}

	items = append(items, MenuItem{
		GameID: wordsearch.IDRandom,
		Title:  "Random puzzle...",
		Detail: "pick a difficulty and a word deck",
	})
	return items, err
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.scrollToCursor()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	m.scrollToCursor()
	return m, nil
}

// visibleItems returns how many entries fit on screen.
func (m MenuModel) visibleItems() int {
	return max(1, m.height-menuChrome)
}

func (m *MenuModel) scrollToCursor() {
	n := m.visibleItems()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+n {
		m.offset = m.cursor - n + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "  W O R D   S E A R C H  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a puzzle", m.width))
	b.WriteString("\n\n")

	end := min(len(m.items), m.offset+m.visibleItems())
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		line := fmt.Sprintf("  %s  %s", item.Title, menuDimStyle.Render("("+item.Detail+")"))
		if i == m.cursor {
			line = menuCursorStyle.Render("> "+item.Title) + "  " + menuDimStyle.Render("("+item.Detail+")")
		}
		b.WriteString(centerStyled(lipgloss.NewStyle(), line, m.width))
		b.WriteString("\n")
	}

	if m.loadErr != nil {
		b.WriteString("\n")
		b.WriteString(centerStyled(menuErrStyle, "Some puzzles could not be loaded: "+m.loadErr.Error(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Best times  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers a styled string, measuring its printed width.
func centerStyled(style lipgloss.Style, text string, width int) string {
	rendered := style.Render(text)
	w := lipgloss.Width(rendered)
	if w >= width {
		return rendered
	}
	return strings.Repeat(" ", (width-w)/2) + rendered
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item            MenuItem
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.Item = *m.Selected()
	} else {
		result.Quit = true
	}

	return result, nil
}
