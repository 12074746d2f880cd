package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/host"
	"github.com/vovakirdan/wasm-arcade/internal/registry"
	"github.com/vovakirdan/wasm-arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Runtime carries the frame rate and key hold window for every session.
	Runtime core.RuntimeConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Runtime:     core.DefaultConfig(),
	}
}

// SSHServer wraps a Wish SSH server for the arcade.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	reg    *registry.Registry
	store  *storage.Store
	logger *log.Logger
	games  sync.Map // ssh session id -> *gameSlot
}

// NewSSHServer creates a new SSH server serving the guests in reg.
// store may be nil, in which case no scores are recorded.
func NewSSHServer(cfg SSHServerConfig, reg *registry.Registry, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		reg:    reg,
		store:  store,
		logger: logger.WithPrefix("arcade-ssh"),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}
	hostKeyPath, err := storage.ExpandHome(hostKeyPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
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

	cfg := s.config.Runtime
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height

	slot := &gameSlot{}
	s.games.Store(sshSession.Context().SessionID(), slot)

	model := NewSessionModel(sshSession.Context(), s.reg, s.store, s.logger, cfg, sshSession.User(), slot)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sessionMiddleware logs SSH session events and releases a guest left
// running when the connection drops.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		if slot, ok := s.games.LoadAndDelete(sshSession.Context().SessionID()); ok {
			slot.(*gameSlot).finish(s.logger)
		}
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "guests", len(s.reg.List()))

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
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// gameSlot holds the play model of a connection, if one is running.
type gameSlot struct {
	mu    sync.Mutex
	model *Model
}

func (g *gameSlot) set(m *Model) {
	g.mu.Lock()
	g.model = m
	g.mu.Unlock()
}

// finish records and closes the running guest, if any.
func (g *gameSlot) finish(logger *log.Logger) {
	g.mu.Lock()
	m := g.model
	g.model = nil
	g.mu.Unlock()

	if m == nil {
		return
	}
	if err := m.Finish(context.Background()); err != nil {
		logger.Warn("cannot close guest", "guest", m.guest.ID, "err", err)
	}
}

// SessionModel manages the full arcade session flow:
// menu -> game or scoreboard -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	ctx        context.Context
	reg        *registry.Registry
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	username   string
	slot       *gameSlot
	menu       MenuModel
	scoreboard *ScoreboardModel
	game       *Model
	notice     string
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(ctx context.Context, reg *registry.Registry, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, username string, slot *gameSlot) SessionModel {
	if slot == nil {
		slot = &gameSlot{}
	}
	return SessionModel{
		ctx:      ctx,
		reg:      reg,
		store:    store,
		logger:   logger,
		config:   cfg,
		username: username,
		slot:     slot,
		menu:     NewMenuModel(reg, store, cfg),
	}
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

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.reg, m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.menu = NewMenuModel(m.reg, m.store, m.config)
		return m, sb.Init()

	case m.menu.Selected() != nil:
		guest := *m.menu.Selected()
		m.menu = NewMenuModel(m.reg, m.store, m.config)
		return m.startGame(guest)
	}

	return m, cmd
}

// startGame loads guest and switches to play mode.
func (m SessionModel) startGame(guest registry.GuestInfo) (tea.Model, tea.Cmd) {
	mod, err := m.reg.Create(m.ctx, guest.ID)
	if err != nil {
		m.logger.Error("cannot load guest", "guest", guest.ID, "err", err)
		m.notice = err.Error()
		return m, nil
	}
	sess, err := host.NewSession(m.ctx, mod, m.logger)
	if err != nil {
		m.logger.Error("cannot start guest", "guest", guest.ID, "err", err)
		m.notice = err.Error()
		if cerr := mod.Close(m.ctx); cerr != nil {
			m.logger.Warn("cannot close guest", "guest", guest.ID, "err", cerr)
		}
		return m, nil
	}

	m.logger.Info("guest started", "user", m.username, "guest", guest.ID)
	game := NewModel(m.ctx, sess, guest, m.username, m.store, m.logger, m.config)
	m.game = &game
	m.slot.set(m.game)
	m.notice = ""
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
		m.slot.set(m.game)
	}

	switch {
	case m.game.WantsBack():
		m.slot.finish(m.logger)
		m.game = nil
		m.menu = NewMenuModel(m.reg, m.store, m.config)
		return m, m.menu.Init()

	case m.game.quitting:
		m.slot.finish(m.logger)
		m.game = nil
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	}
	if m.notice != "" {
		return errorStyle.Render(m.notice) + "\n" + m.menu.View()
	}
	return m.menu.View()
}
