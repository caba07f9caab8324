package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordsearch/internal/audio"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

// Options carries the services a game model uses outside the game itself.
// Every field is optional.
type Options struct {
	Store  *storage.Store
	Sink   audio.Sink
	Player string // Recorded with completions; empty means the local player
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Sink == nil {
		o.Sink = audio.Nop{}
	}
	if o.Player == "" {
		o.Player = storage.LocalPlayer
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// zoomKey is the preference key holding a player's zoom level.
func zoomKey(player string) string {
	if player == "" || player == storage.LocalPlayer {
		return storage.PrefZoom
	}
	return storage.PrefZoom + ":" + player
}

// Model is the Bubble Tea model for running one game. It is used on its own
// by Run and embedded in SessionModel for SSH sessions.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	embedded   bool // Back leaves the model to its parent instead of quitting
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current completion has been recorded
	lastZoom   int
	loop       uint64 // Tick loop owned by this model
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	opts = opts.withDefaults()

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Zoom == 0 && opts.Store != nil {
		cfg.Zoom = opts.Store.IntPreference(zoomKey(opts.Player), 0)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		lastZoom:   cfg.Zoom,
		loop:       nextLoopID(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case "n":
		m.newPuzzle()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionBack {
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	}

	return m, nil
}

// newPuzzle reseeds and resets the game. Random puzzles get a fresh grid,
// fixed puzzles start over.
func (m *Model) newPuzzle() {
	m.config.Seed = time.Now().UnixNano()
	m.config.Zoom = m.gameState.Zoom
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.saved = false
	m.inputFrame.Clear()
}

// handleResize processes window resize events. Games that can relayout
// keep their progress; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if rg, ok := m.game.(registry.ResizableGame); ok {
		rg.Resize(msg.Width, msg.Height)
		return m, nil
	}
	m.game.Reset(m.config)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	audio.PlayEvents(m.opts.Sink, result.Events)

	// Record the completion once; a replay clears the flag
	switch {
	case m.gameState.Completed && !m.saved:
		m.saveCompletion()
		m.saved = true
	case !m.gameState.Completed:
		m.saved = false
	}

	// The first state only reports the starting zoom
	if z := m.gameState.Zoom; z != 0 && z != m.lastZoom {
		if m.lastZoom != 0 {
			m.saveZoom(z)
		}
		m.lastZoom = z
		m.config.Zoom = z
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m Model) saveCompletion() {
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveCompletion(storage.Completion{
		PuzzleID: m.gameState.Level,
		Player:   m.opts.Player,
		Duration: m.gameState.Elapsed,
		Words:    m.gameState.Total,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save completion", "puzzle", m.gameState.Level, "error", err)
		return
	}
	m.opts.Logger.Info("puzzle solved",
		"puzzle", m.gameState.Level,
		"player", m.opts.Player,
		"time", m.gameState.Elapsed.Truncate(time.Millisecond),
	)
}

func (m Model) saveZoom(z int) {
	if m.opts.Store == nil {
		return
	}
	if err := m.opts.Store.SetIntPreference(zoomKey(m.opts.Player), z); err != nil {
		m.opts.Logger.Warn("could not save zoom", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.wordsearch/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".wordsearch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game. It reports whether
// the player asked to go back to the menu rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
