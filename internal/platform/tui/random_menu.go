package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
)

// RandomSelection holds the user's choices for a generated puzzle.
type RandomSelection struct {
	Difficulty string
	Deck       string
}

var randomPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// RandomModel lets users choose a difficulty preset and then a word deck
// for a generated puzzle.
type RandomModel struct {
	cfg          config.WordSearchConfig
	decks        []string
	cursor       int
	deckCursor   int
	inDeckSelect bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    RandomSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewRandomModel creates a selector over the current game configuration.
func NewRandomModel(width, height int) RandomModel {
	cfg := wordsearch.Config()
	m := RandomModel{
		cfg:       cfg,
		decks:     cfg.DeckNames(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}

	// Start on the configured defaults
	for i, p := range randomPresets {
		if string(p) == cfg.Generator.Difficulty {
			m.cursor = i
		}
	}
	for i, d := range m.decks {
		if d == cfg.Generator.Deck {
			m.deckCursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m RandomModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RandomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m RandomModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDeckSelect {
		return m.handleDeckSelectKey(action)
	}
	return m.handleDifficultyKey(action)
}

func (m RandomModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(randomPresets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = string(randomPresets[m.cursor])
		if len(m.decks) <= 1 {
			if len(m.decks) == 1 {
				m.selection.Deck = m.decks[0]
			}
			m.choosing = false
			return m, tea.Quit
		}
		m.inDeckSelect = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m RandomModel) handleDeckSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.deckCursor > 0 {
			m.deckCursor--
		}
	case MenuActionDown:
		if m.deckCursor < len(m.decks)-1 {
			m.deckCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Deck = m.decks[m.deckCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inDeckSelect = false
	}

	return m, nil
}

// View renders the difficulty or deck selection.
func (m RandomModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDeckSelect {
		return m.viewDeckSelect()
	}
	return m.viewDifficulty()
}

func (m RandomModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("R A N D O M   P U Z Z L E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range randomPresets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		rows, cols := m.cfg.GridSize(p)
		dirs := len(m.cfg.Preset(p).Directions)
		line := fmt.Sprintf("%s%-7s %dx%d, %d directions", cursor, p, rows, cols, dirs)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m RandomModel) viewDeckSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT WORD DECK", m.width))
	b.WriteString("\n\n")

	for i, name := range m.decks {
		cursor := "  "
		if i == m.deckCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s (%d words)", cursor, name, len(m.cfg.Decks[name]))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m RandomModel) Selected() *RandomSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m RandomModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m RandomModel) WantsBack() bool {
	return m.back
}

// RunRandomSelector runs the difficulty and deck selection. A nil
// selection means the user backed out or quit.
func RunRandomSelector(cfg core.RuntimeConfig) (*RandomSelection, error) {
	model := NewRandomModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(RandomModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
