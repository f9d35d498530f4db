package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eduarcade/internal/core"
	"github.com/vovakirdan/eduarcade/internal/registry"
	"github.com/vovakirdan/eduarcade/internal/storage"
)

// Options configures how the terminal UI records and reports rounds.
type Options struct {
	// Player is stored with every saved result.
	Player string

	// Logger receives round and navigation events. Defaults to log.Default().
	Logger *log.Logger

	// Standalone makes a navigation request end the program instead of
	// handing control back to the surrounding session.
	Standalone bool
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// GameModel is the Bubble Tea model for running a single game.
// It drives the game at a fixed tick rate, saves one result per finished
// round and surfaces the game's navigation requests.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	saved      bool // Whether the current finished round has been recorded
	nav        *core.NavRequest
	outcome    *core.Outcome
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Game layouts are computed from the screen at render time, so a
		// resize never resets a round in progress.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.nav != nil || m.quitting {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if m.gameState.GameOver() {
		if !m.saved {
			m.record()
			m.saved = true
		}
	} else {
		m.saved = false
	}

	if result.Nav != nil {
		m.nav = result.Nav
		m.opts.logger().Debug("navigation requested",
			"game", m.game.ID(),
			"dest", string(result.Nav.Dest),
		)
		if m.opts.Standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// record stores the outcome of the round that just finished.
func (m *GameModel) record() {
	out := m.game.Outcome()
	if out.GameID == "" {
		out.GameID = m.game.ID()
	}
	m.outcome = &out

	logger := m.opts.logger()
	logger.Info("round finished",
		"game", out.GameID,
		"player", m.opts.Player,
		"score", out.Score,
		"attempts", out.Attempts,
		"completed", out.Completed,
	)

	if m.store == nil {
		return
	}
	saved, err := m.store.SaveResult(storage.Result{
		GameID:    out.GameID,
		Player:    m.opts.Player,
		Score:     out.Score,
		Attempts:  out.Attempts,
		Completed: out.Completed,
	})
	if err != nil {
		logger.Warn("could not save result", "game", out.GameID, "error", err)
		return
	}
	logger.Debug("result saved", "id", saved.ID)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	logger := m.opts.logger()

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".eduarcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("screenshot skipped", "error", err)
		return
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Nav returns the navigation request the game emitted, if any.
func (m GameModel) Nav() *core.NavRequest {
	return m.nav
}

// Outcome returns the most recently finished round, if any.
func (m GameModel) Outcome() *core.Outcome {
	return m.outcome
}

// Run plays a single game until the player quits or navigates away.
// It returns the last finished round, or nil when no round ended.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (*core.Outcome, error) {
	opts.Standalone = true
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.Outcome(), nil
	}
	return nil, nil
}
