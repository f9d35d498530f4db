package mathdrill

import (
	"fmt"

	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
	"github.com/vovakirdan/eduarcade/internal/registry"
)

const (
	gameID    = config.GameMathDrill
	gameTitle = "Math Master"

	maxAnswerLen = 6
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

// Game adapts a Session to the arcade game interface. It owns the typed
// answer buffer; the session only sees complete submissions.
type Game struct {
	session *Session
	cfg     config.MathDrillConfig
	loadErr error

	answer  []rune
	screenW int
	screenH int
}

// New creates a new Math Master game.
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
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.answer = g.answer[:0]

	gameCfg, err := config.LoadMathDrill(configPath)
	g.loadErr = err
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyMathDrillPreset(&gameCfg, preset)
	}
	g.cfg = gameCfg

	g.session = NewSession(RulesFromConfig(gameCfg, cfg.TickRate), core.NewRand(cfg.Seed))
}

// Step advances delays by one tick and applies the frame's input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.session.Tick()
	snap := g.session.Snapshot()

	if in.Has(core.ActionBack) {
		return core.StepResult{State: g.State(), Nav: g.leave()}
	}

	switch snap.Status {
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

	for _, r := range in.Runes {
		g.typeRune(r)
	}
	if in.Has(core.ActionErase) && len(g.answer) > 0 {
		g.answer = g.answer[:len(g.answer)-1]
	}

	switch {
	case in.Has(core.ActionConfirm) && len(g.answer) > 0:
		if g.session.Submit(string(g.answer)) != VerdictIgnored {
			g.answer = g.answer[:0]
		}
	case in.Has(core.ActionSkip):
		if g.session.Skip() {
			g.answer = g.answer[:0]
		}
	}
}

// typeRune accepts digits and a single leading minus sign.
func (g *Game) typeRune(r rune) {
	if len(g.answer) >= maxAnswerLen {
		return
	}
	switch {
	case r >= '0' && r <= '9':
		g.answer = append(g.answer, r)
	case r == '-' && len(g.answer) == 0:
		g.answer = append(g.answer, r)
	}
}

func (g *Game) start() {
	g.answer = g.answer[:0]
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
	return core.GameState{
		Score:  snap.Score,
		Status: snap.Status,
	}
}

// Outcome reports the result of the current round.
func (g *Game) Outcome() core.Outcome {
	snap := g.session.Snapshot()
	return core.Outcome{
		GameID:   gameID,
		Title:    gameTitle,
		Score:    snap.Score,
		Attempts: snap.Wrong,
		Summary:  fmt.Sprintf("Game Over! Your final score is: %d", snap.Score),
	}
}

// Session exposes the underlying rule engine.
func (g *Game) Session() *Session {
	return g.session
}
