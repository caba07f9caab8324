// Package wordsearch implements the word search game: a fixed or generated
// puzzle, mouse and keyboard selection, zoom, and the match animations.
// The puzzle rules live in the core subpackage.
package wordsearch

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	wscore "github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzles"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeFixed  Mode = "fixed"
	ModeRandom Mode = "random"
)

// Registered game IDs.
const (
	IDFixed  = "wordsearch"
	IDRandom = "wordsearch_random"
)

// PointsPerWord is the score for each found word.
const PointsPerWord = 100

// ErrWrongMode is returned when a setting does not apply to the game mode.
var ErrWrongMode = errors.New("wordsearch: setting not supported in this mode")

// Game implements the word search puzzle game.
type Game struct {
	mode Mode
	cfg  config.WordSearchConfig
	tick uint64
	seed int64

	puzzleID   string
	difficulty config.DifficultyPreset
	deck       string
	puzzle     puzzles.Puzzle
	state      *wscore.State
	input      *wscore.InputAdapter
	layout     Layout
	loadErr    error
	events     []core.Event // Raised by the engine since the last StepResult

	zoom        int
	cursor      wscore.Cell
	keyDrag     bool // Gesture opened with the keyboard cursor
	usedPointer bool // Hide the cursor while the mouse is in use
	elapsed     time.Duration
	tickDur     time.Duration

	flights   []Flight
	missCells wscore.Selection
	missTicks int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	completed bool
	paused    bool
	tooSmall  bool
}

// Package-level configuration shared by every new game.
var (
	gameConfig   = config.DefaultWordSearchConfig()
	puzzleLoader = puzzles.NewLoader("")
)

// SetConfig replaces the configuration used by the next Reset.
func SetConfig(cfg config.WordSearchConfig) {
	gameConfig = cfg
}

// Config returns the configuration used by the next Reset.
func Config() config.WordSearchConfig {
	return gameConfig
}

// SetLoader replaces the puzzle source used by fixed-puzzle games.
func SetLoader(l *puzzles.Loader) {
	if l != nil {
		puzzleLoader = l
	}
}

// PuzzleLoader returns the puzzle source used by fixed-puzzle games.
func PuzzleLoader() *puzzles.Loader {
	return puzzleLoader
}

// New creates a game playing the default fixed puzzle.
func New() *Game {
	return &Game{
		mode:     ModeFixed,
		puzzleID: puzzles.DefaultID,
	}
}

// NewRandom creates a game that generates a puzzle on every Reset.
func NewRandom() *Game {
	return &Game{
		mode: ModeRandom,
	}
}

func init() {
	registry.Register(IDFixed, func() registry.Game {
		return New()
	})
	registry.Register(IDRandom, func() registry.Game {
		return NewRandom()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRandom {
		return IDRandom
	}
	return IDFixed
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "Word Search (Random)"
	}
	return "Word Search"
}

// SetPuzzle selects the fixed puzzle for the next Reset.
func (g *Game) SetPuzzle(id string) error {
	if g.mode != ModeFixed {
		return fmt.Errorf("%w: %s generates its puzzles", ErrWrongMode, g.ID())
	}
	if _, err := puzzleLoader.LoadByID(id); err != nil {
		return err
	}
	g.puzzleID = id
	return nil
}

// SetDifficulty selects the preset used to generate the next puzzle.
func (g *Game) SetDifficulty(name string) error {
	if g.mode != ModeRandom {
		return fmt.Errorf("%w: %s plays fixed puzzles", ErrWrongMode, g.ID())
	}
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.difficulty = p
	return nil
}

// SetDeck selects the word deck used to generate the next puzzle.
func (g *Game) SetDeck(name string) error {
	if g.mode != ModeRandom {
		return fmt.Errorf("%w: %s plays fixed puzzles", ErrWrongMode, g.ID())
	}
	if _, err := gameConfig.Deck(name); err != nil {
		return err
	}
	g.deck = name
	return nil
}

// Err returns the error that prevented the last Reset from loading a puzzle.
func (g *Game) Err() error {
	return g.loadErr
}

// Puzzle returns the puzzle being played.
func (g *Game) Puzzle() puzzles.Puzzle {
	return g.puzzle
}

// Reset loads or generates the puzzle and starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = gameConfig
	g.seed = cfg.Seed
	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.events = nil

	g.zoom = g.cfg.Zoom.Default
	if cfg.Zoom != 0 {
		g.zoom = cfg.Zoom
	}
	g.zoom = core.Clamp(g.zoom, g.cfg.Zoom.Min, g.cfg.Zoom.Max)

	g.state, g.input = nil, nil
	g.puzzle = puzzles.Puzzle{}
	g.loadErr = g.loadPuzzle()
	if g.loadErr != nil {
		return
	}
	g.state.Subscribe(g.observer())
	g.restart()
	g.relayout()
}

// loadPuzzle builds the engine state for the selected or generated puzzle.
func (g *Game) loadPuzzle() error {
	var (
		p   puzzles.Puzzle
		err error
	)
	if g.mode == ModeRandom {
		p, err = g.generate()
	} else {
		p, err = puzzleLoader.LoadByID(g.puzzleID)
	}
	if err != nil {
		return err
	}

	state, err := p.NewState()
	if err != nil {
		return err
	}
	g.puzzle = p
	g.state = state
	return nil
}

// generate hides the configured deck in a fresh grid.
func (g *Game) generate() (puzzles.Puzzle, error) {
	preset := g.difficulty
	if preset == "" {
		p, err := config.ParsePreset(g.cfg.Generator.Difficulty)
		if err != nil {
			return puzzles.Puzzle{}, err
		}
		preset = p
	}

	deck := g.deck
	if deck == "" {
		deck = g.cfg.Generator.Deck
	}
	words, err := g.cfg.Deck(deck)
	if err != nil {
		return puzzles.Puzzle{}, err
	}
	dirs, err := wscore.ParseDirs(g.cfg.Preset(preset).Directions)
	if err != nil {
		return puzzles.Puzzle{}, fmt.Errorf("wordsearch: preset %s: %w", preset, err)
	}

	// The grid grows so that every word of the deck fits in any direction.
	rows, cols := g.cfg.GridSize(preset)
	for _, w := range words {
		rows = max(rows, len(w))
		cols = max(cols, len(w))
	}

	params := wscore.DefaultGenParams()
	params.Rows = rows
	params.Cols = cols
	params.Dirs = dirs
	params.Seed = g.seed
	params.MaxAttempts = g.cfg.Generator.MaxAttempts
	params.MaxRestarts = g.cfg.Generator.MaxRestarts

	grid, _, err := wscore.Generate(words, params)
	if err != nil {
		return puzzles.Puzzle{}, fmt.Errorf("wordsearch: generating %s puzzle: %w", deck, err)
	}

	return puzzles.Puzzle{
		ID:          "random-" + string(preset),
		Name:        fmt.Sprintf("Random %s (%s)", deck, preset),
		Description: fmt.Sprintf("Generated from the %s deck with seed %d.", deck, g.seed),
		Rows:        grid.Lines(),
		Words:       words,
		FilePath:    "generated",
	}, nil
}

// observer turns engine callbacks into platform events and animations.
func (g *Game) observer() wscore.Observer {
	return wscore.ObserverFuncs{
		Match: func(fw wscore.FoundWord) {
			g.events = append(g.events, core.EventMatch)
			g.startFlights(fw)
		},
		Miss: func(sel wscore.Selection) {
			g.events = append(g.events, core.EventMiss)
			g.startMissFlash(sel)
		},
		Complete: func() {
			g.events = append(g.events, core.EventComplete)
			g.completed = true
		},
	}
}

// restart clears progress on the current puzzle.
func (g *Game) restart() {
	g.state.Reset()
	g.completed = false
	g.elapsed = 0
	g.cursor = wscore.Cell{}
	g.keyDrag = false
	g.usedPointer = false
	g.flights = nil
	g.missCells = nil
	g.missTicks = 0
}

// relayout recomputes the geometry after a resize or zoom change.
func (g *Game) relayout() {
	grid := g.state.Grid()
	l, ok := ComputeLayout(g.screenW, g.screenH, grid.Rows(), grid.Cols(),
		g.state.Words().Words(), g.zoom, g.cfg.Zoom.Min, g.cfg.Layout)
	g.layout = l
	g.tooSmall = !ok

	if g.input == nil {
		g.input = wscore.NewInputAdapter(g.state, l)
	} else {
		g.input.SetHitTester(l)
	}
}

// Resize adapts the layout to a new terminal size without losing progress.
// An open gesture is cancelled.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.state == nil {
		return
	}
	g.cancelGesture()
	g.relayout()
}

// cancelGesture closes an open gesture. The engine evaluates it as usual.
func (g *Game) cancelGesture() {
	if g.state.Selecting() {
		g.input.Handle(wscore.Pointer{Phase: wscore.PhaseCancel})
	}
	g.keyDrag = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.state == nil || g.tooSmall {
		return g.result()
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.completed {
		g.paused = !g.paused
		if g.paused {
			g.cancelGesture()
		}
	}

	if g.paused {
		return g.result()
	}

	// Replay the same puzzle
	if in.Has(core.ActionRestart) {
		g.restart()
		return g.result()
	}

	g.handleZoom(in)
	g.updateAnimations()

	if g.completed {
		return g.result()
	}

	g.elapsed += g.tickDur
	g.handlePointers(in.Pointers)
	if !g.completed {
		g.handleKeys(in)
	}

	return g.result()
}

// handleZoom changes the cell width within the configured bounds.
func (g *Game) handleZoom(in core.InputFrame) {
	zoom := g.zoom
	switch {
	case in.Has(core.ActionZoomIn):
		zoom++
	case in.Has(core.ActionZoomOut):
		zoom--
	case in.Has(core.ActionZoomReset):
		zoom = g.cfg.Zoom.Default
	}
	zoom = core.Clamp(zoom, g.cfg.Zoom.Min, g.cfg.Zoom.Max)

	if zoom != g.zoom {
		g.zoom = zoom
		g.relayout()
	}
}

// handlePointers feeds mouse events to the engine in arrival order.
func (g *Game) handlePointers(events []core.PointerEvent) {
	for _, ev := range events {
		g.usedPointer = true
		g.keyDrag = false
		g.input.Handle(wscore.Pointer{X: ev.X, Y: ev.Y, Phase: enginePhase(ev.Phase)})
		if g.completed {
			return
		}
	}
}

func enginePhase(p core.PointerPhase) wscore.Phase {
	switch p {
	case core.PointerPress:
		return wscore.PhaseDown
	case core.PointerDrag:
		return wscore.PhaseMove
	case core.PointerRelease:
		return wscore.PhaseUp
	default:
		return wscore.PhaseCancel
	}
}

// handleKeys moves the keyboard cursor. Select opens a gesture at the
// cursor and a second Select releases it.
func (g *Game) handleKeys(in core.InputFrame) {
	g.keyDrag = g.keyDrag && g.state.Selecting()

	prev := g.cursor
	if in.Has(core.ActionUp) {
		g.cursor.Row--
	}
	if in.Has(core.ActionDown) {
		g.cursor.Row++
	}
	if in.Has(core.ActionLeft) {
		g.cursor.Col--
	}
	if in.Has(core.ActionRight) {
		g.cursor.Col++
	}
	grid := g.state.Grid()
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, grid.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, grid.Cols()-1)

	if g.cursor != prev {
		g.usedPointer = false
		if g.keyDrag {
			g.input.HandleCell(g.cursor, wscore.PhaseMove)
		}
	}

	if in.Has(core.ActionSelect) {
		g.usedPointer = false
		if g.keyDrag {
			g.keyDrag = false
			g.input.HandleCell(g.cursor, wscore.PhaseUp)
		} else {
			g.input.HandleCell(g.cursor, wscore.PhaseDown)
			g.keyDrag = g.state.Selecting()
		}
	}
}

// Events raised between steps, such as by a resize, go out with the next one.
func (g *Game) result() core.StepResult {
	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	found, total := 0, 0
	if g.state != nil {
		found, total = g.state.Progress()
	}
	return core.GameState{
		Score:     found * PointsPerWord,
		GameOver:  g.completed,
		Paused:    g.paused || g.tooSmall,
		Completed: g.completed,
		Level:     g.puzzle.ID,
		Found:     found,
		Total:     total,
		Elapsed:   g.elapsed,
		Zoom:      g.zoom,
	}
}
