package memorymatch

import (
	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
	"github.com/vovakirdan/eduarcade/internal/registry"
)

const (
	gameID    = config.GameMemoryMatch
	gameTitle = "Memory Match"

	gridCols = 4
)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts a Session to the arcade game interface with a cursor over the
// card grid.
type Game struct {
	session  *Session
	loadErr  error
	startErr error
	cursor   int
}

// New creates a new Memory Match game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return gameID }

// Title returns the display name.
func (g *Game) Title() string { return gameTitle }

// Reset loads configuration and prepares a session waiting for Start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadMemoryMatch(configPath)
	g.loadErr = err
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyMemoryMatchPreset(&gameCfg, preset)
	}
	g.cursor = 0
	g.startErr = nil
	g.session = NewSession(RulesFromConfig(gameCfg, cfg.TickRate), core.NewRand(cfg.Seed))
}

// Step advances pending resolutions by one tick and applies the input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.session.Tick()

	if in.Has(core.ActionBack) {
		return core.StepResult{State: g.State(), Nav: g.leave()}
	}

	switch g.session.Snapshot().Status {
	case core.StatusNotStarted:
		if g.loadErr == nil && in.Has(core.ActionConfirm) {
			g.start()
		}
	case core.StatusEnded:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.start()
		}
	case core.StatusInProgress:
		if in.Has(core.ActionRestart) {
			g.start()
			break
		}
		g.moveCursor(in)
		if in.Has(core.ActionConfirm) {
			g.session.Flip(g.cursor)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.session.Len()
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Wrap(g.cursor-1, n)
	case in.Has(core.ActionRight):
		g.cursor = core.Wrap(g.cursor+1, n)
	case in.Has(core.ActionUp):
		g.cursor = core.Wrap(g.cursor-gridCols, n)
	case in.Has(core.ActionDown):
		g.cursor = core.Wrap(g.cursor+gridCols, n)
	}
}

func (g *Game) start() {
	g.cursor = 0
	g.startErr = g.session.Start()
}

func (g *Game) leave() *core.NavRequest {
	return core.NewNavRequest(core.DestLearningHub).
		With("game", gameID).
		With("score", g.session.Snapshot().Score)
}

// State returns the current game state. The score stays zero until the
// round ends because it is derived from the final move count.
func (g *Game) State() core.GameState {
	snap := g.session.Snapshot()
	return core.GameState{Score: snap.Score, Status: snap.Status}
}

// Outcome reports the result of the current round.
func (g *Game) Outcome() core.Outcome {
	snap := g.session.Snapshot()
	return core.Outcome{
		GameID:    gameID,
		Title:     gameTitle,
		Score:     snap.Score,
		Attempts:  snap.Moves / 2,
		Completed: snap.Status == core.StatusEnded,
		Summary:   snap.Message,
	}
}

// Session exposes the underlying rule engine.
func (g *Game) Session() *Session {
	return g.session
}
