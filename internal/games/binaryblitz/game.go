package binaryblitz

import (
	"fmt"

	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
	"github.com/vovakirdan/eduarcade/internal/registry"
)

const (
	gameID    = config.GameBinaryBlitz
	gameTitle = "Binary Blitz"

	gridCols = 2
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
// option grid.
type Game struct {
	session *Session
	cfg     config.BinaryBlitzConfig
	loadErr error
	cursor  int
}

// New creates a new Binary Blitz game.
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
	gameCfg, err := config.LoadBinaryBlitz(configPath)
	g.loadErr = err
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyBinaryBlitzPreset(&gameCfg, preset)
	}
	g.cfg = gameCfg
	g.cursor = 0
	g.session = NewSession(RulesFromConfig(gameCfg), core.NewRand(cfg.Seed))
}

// Step applies the frame's input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
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
		g.handlePlay(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handlePlay(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.start()
		return
	}

	options := g.session.Snapshot().Challenge.Options
	n := len(options)
	if n == 0 {
		return
	}

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

	// Number keys pick an option directly.
	for _, r := range in.Runes {
		if idx := int(r - '1'); idx >= 0 && idx < n && idx < 9 {
			g.cursor = idx
			g.choose(options[idx])
			return
		}
	}

	if in.Has(core.ActionConfirm) {
		g.choose(options[g.cursor])
	}
}

func (g *Game) choose(option string) {
	if g.session.Select(option) == VerdictCorrect {
		g.cursor = 0
	}
}

func (g *Game) start() {
	g.cursor = 0
	g.session.Start()
}

func (g *Game) leave() *core.NavRequest {
	return core.NewNavRequest(core.DestLearningHub).
		With("game", gameID).
		With("score", g.session.Snapshot().Score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.session.Snapshot()
	return core.GameState{Score: snap.Score, Status: snap.Status}
}

// Outcome reports the result of the current round.
func (g *Game) Outcome() core.Outcome {
	snap := g.session.Snapshot()
	return core.Outcome{
		GameID:   gameID,
		Title:    gameTitle,
		Score:    snap.Score,
		Attempts: snap.Wrong,
		Summary:  fmt.Sprintf("Game Over! Your score: %d (level %d)", snap.Score, snap.Level),
	}
}

// Session exposes the underlying rule engine.
func (g *Game) Session() *Session {
	return g.session
}
