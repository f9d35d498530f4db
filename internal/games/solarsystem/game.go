package solarsystem

import (
	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
	"github.com/vovakirdan/eduarcade/internal/registry"
)

const (
	gameID    = config.GameSolarSystem
	gameTitle = "Solar System"
)

var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the arcade game interface. Dragging is done in two
// steps: pick a planet from the left column, then drop it on a description.
type Game struct {
	session  *Session
	loadErr  error
	startErr error

	itemCursor int
	slotCursor int
	held       string // Name of the picked-up planet, empty when none
}

// New creates a new Solar System game.
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

// Reset loads configuration and starts a round straight away. If the planet
// data is unusable the game stays not started and shows why.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadSolarSystem(configPath)
	g.loadErr = err
	g.session = NewSession(RulesFromConfig(gameCfg, cfg.TickRate), core.NewRand(cfg.Seed))
	g.start()
}

// Step advances message timers by one tick and applies the input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.session.Tick()

	if in.Has(core.ActionBack) {
		if g.held != "" {
			g.held = ""
			return core.StepResult{State: g.State()}
		}
		return core.StepResult{State: g.State(), Nav: g.leave()}
	}

	if in.Has(core.ActionRestart) {
		g.start()
		return core.StepResult{State: g.State()}
	}

	if g.session.Snapshot().Status == core.StatusInProgress {
		if g.held == "" {
			g.handlePick(in)
		} else {
			g.handleDrop(in)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handlePick(in core.InputFrame) {
	items := g.session.Snapshot().Items
	n := len(items)
	switch {
	case in.Has(core.ActionUp):
		g.itemCursor = core.Wrap(g.itemCursor-1, n)
	case in.Has(core.ActionDown):
		g.itemCursor = core.Wrap(g.itemCursor+1, n)
	case in.Has(core.ActionConfirm):
		if it := items[g.itemCursor]; !it.Matched {
			g.held = it.Name
		}
	}
}

func (g *Game) handleDrop(in core.InputFrame) {
	n := len(g.session.Snapshot().Slots)
	switch {
	case in.Has(core.ActionUp):
		g.slotCursor = core.Wrap(g.slotCursor-1, n)
	case in.Has(core.ActionDown):
		g.slotCursor = core.Wrap(g.slotCursor+1, n)
	case in.Has(core.ActionConfirm):
		g.session.AttemptMatch(g.held, g.slotCursor)
		g.held = ""
	}
}

func (g *Game) start() {
	g.itemCursor = 0
	g.slotCursor = 0
	g.held = ""
	if g.loadErr != nil {
		g.startErr = g.loadErr
		return
	}
	g.startErr = g.session.Start()
}

func (g *Game) leave() *core.NavRequest {
	return core.NewNavRequest(core.DestLearningHub).With("game", gameID)
}

// KeepsScore reports false: rounds are ranked by attempts.
func (g *Game) KeepsScore() bool { return false }

// State returns the current game state. Pairing has no score.
func (g *Game) State() core.GameState {
	return core.GameState{Status: g.session.Snapshot().Status}
}

// Outcome reports the result of the current round.
func (g *Game) Outcome() core.Outcome {
	snap := g.session.Snapshot()
	return core.Outcome{
		GameID:    gameID,
		Title:     gameTitle,
		Attempts:  snap.Attempts,
		Completed: snap.Status == core.StatusEnded,
		Summary:   MessageComplete,
	}
}

// Session exposes the underlying rule engine.
func (g *Game) Session() *Session {
	return g.session
}

// Held returns the name of the picked-up planet, if any.
func (g *Game) Held() string {
	return g.held
}
