package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-wordsearch/internal/audio"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
	"github.com/vovakirdan/tui-wordsearch/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.wordsearch/host_key.
	HostKeyPath string

	// DBPath is the path to the completions database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Bell rings the client's terminal bell on misses and completions.
	Bell bool

	// TickRate is the simulation rate of every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.wordsearch/wordsearch.db",
		IdleTimeout: 30 * time.Minute,
		Bell:        true,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server serving the word search game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordsearch-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open completions database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".wordsearch", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	var sink audio.Sink = audio.Nop{}
	if s.config.Bell {
		sink = audio.NewBell(sshSession)
	}

	opts := Options{
		Store:  s.store,
		Sink:   sink,
		Player: sshSession.User(),
		Logger: s.logger.With("user", sshSession.User()),
	}

	return NewSessionModel(cfg, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Truncate(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenRandom
	screenScoreboard
	screenGame
)

// SessionModel manages the full session flow inside one Bubble Tea program:
// menu -> (random setup) -> game -> menu, plus the scoreboard.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	opts       Options
	config     core.RuntimeConfig
	sessionID  string
	screen     sessionScreen
	menu       MenuModel
	random     RandomModel
	scoreboard ScoreboardModel
	gameModel  *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	opts = opts.withDefaults()
	sessionID := uuid.New().String()
	opts.Logger = opts.Logger.With("session", sessionID[:8])

	return SessionModel{
		opts:      opts,
		config:    cfg,
		sessionID: sessionID,
		menu:      NewMenuModel(opts.Store, cfg),
	}
}

// SessionID returns the unique identifier of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRandom:
		return m.updateRandom(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// quit ends the whole session.
func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// toMenu returns to a freshly loaded menu so new best times show up.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode. The menu quits its own
// program on select; inside a session that command is dropped.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	if m.menu.WantsScoreboard() {
		m.screen = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		if selected.Random() {
			m.screen = screenRandom
			m.random = NewRandomModel(m.config.ScreenW, m.config.ScreenH)
			return m, m.random.Init()
		}
		return m.startGame(selected.GameID, func(g registry.Game) error {
			pg, ok := g.(registry.PuzzleGame)
			if !ok {
				return wordsearch.ErrWrongMode
			}
			return pg.SetPuzzle(selected.PuzzleID)
		})
	}

	return m, cmd
}

// updateRandom handles the difficulty and deck selection.
func (m SessionModel) updateRandom(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.random.Update(msg)
	if rm, ok := newModel.(RandomModel); ok {
		m.random = rm
	}

	switch {
	case m.random.IsQuitting():
		return m.quit()
	case m.random.WantsBack():
		return m.toMenu()
	}

	if sel := m.random.Selected(); sel != nil {
		return m.startGame(wordsearch.IDRandom, func(g registry.Game) error {
			return applyRandomSelection(g, *sel)
		})
	}
	return m, cmd
}

// updateScoreboard handles the best times screen.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sm
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// startGame creates the game, lets setup configure it and switches to it.
// A failed setup logs and stays on the menu.
func (m SessionModel) startGame(gameID string, setup func(registry.Game) error) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err == nil && setup != nil {
		err = setup(game)
	}
	if err != nil {
		m.opts.Logger.Warn("cannot start game", "game", gameID, "error", err)
		return m.toMenu()
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	gm := NewModel(game, cfg, m.opts)
	gm.embedded = true
	m.gameModel = &gm
	m.screen = screenGame

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.gameModel = &gm
	}

	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	if m.gameModel.IsQuitting() {
		return m.quit()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenRandom:
		return m.random.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// applyRandomSelection configures a generated-puzzle game.
func applyRandomSelection(g registry.Game, sel RandomSelection) error {
	dg, ok := g.(registry.DifficultyGame)
	if !ok {
		return wordsearch.ErrWrongMode
	}
	if err := dg.SetDifficulty(sel.Difficulty); err != nil {
		return err
	}
	if sel.Deck == "" {
		return nil
	}
	wg, ok := g.(*wordsearch.Game)
	if !ok {
		return wordsearch.ErrWrongMode
	}
	return wg.SetDeck(sel.Deck)
}
