package mathdrill

import (
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/eduarcade/internal/core"
	"github.com/vovakirdan/eduarcade/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func typeText(g *Game, text string) {
	in := core.NewInputFrame()
	in.Type([]rune(text)...)
	g.Step(in)
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(gameID) {
		t.Fatalf("%q not registered", gameID)
	}
	g, err := registry.Create(gameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Math Master" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestConfirmStartsSession(t *testing.T) {
	g := newTestGame(t)
	if g.State().Status != core.StatusNotStarted {
		t.Fatalf("status = %v, want not_started", g.State().Status)
	}
	press(g, core.ActionConfirm)
	if g.State().Status != core.StatusInProgress {
		t.Fatalf("status = %v, want in_progress", g.State().Status)
	}
}

func TestTypedAnswerIsSubmitted(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	answer := strconv.Itoa(g.Session().Snapshot().Challenge.Answer)
	typeText(g, "x"+answer)
	if string(g.answer) != answer {
		t.Fatalf("buffer = %q, want %q", string(g.answer), answer)
	}

	press(g, core.ActionConfirm)
	if g.State().Score != 10 {
		t.Errorf("score = %d, want 10", g.State().Score)
	}
	if len(g.answer) != 0 {
		t.Errorf("buffer not cleared: %q", string(g.answer))
	}
}

func TestAnswerBufferEditing(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	typeText(g, "1-2")
	if string(g.answer) != "12" {
		t.Errorf("minus accepted mid-number: %q", string(g.answer))
	}
	press(g, core.ActionErase)
	if string(g.answer) != "1" {
		t.Errorf("after erase = %q, want %q", string(g.answer), "1")
	}
	typeText(g, strings.Repeat("9", 10))
	if len(g.answer) != maxAnswerLen {
		t.Errorf("buffer length = %d, want %d", len(g.answer), maxAnswerLen)
	}
}

func TestEmptyConfirmDoesNotCostALife(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)
	press(g, core.ActionConfirm)
	if lives := g.Session().Snapshot().Lives; lives != 3 {
		t.Errorf("lives = %d, want 3", lives)
	}
}

func TestBackNavigatesToLearningHub(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	res := press(g, core.ActionBack)
	if res.Nav == nil {
		t.Fatal("expected a navigation request")
	}
	if res.Nav.Dest != core.DestLearningHub {
		t.Errorf("Dest = %q, want %q", res.Nav.Dest, core.DestLearningHub)
	}
	if res.Nav.Payload["game"] != gameID {
		t.Errorf("payload game = %v", res.Nav.Payload["game"])
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	for range 3 {
		wrong := strconv.Itoa(g.Session().Snapshot().Challenge.Answer + 1)
		typeText(g, wrong)
		press(g, core.ActionConfirm)
	}
	if !g.State().GameOver() {
		t.Fatal("expected game over after three wrong answers")
	}
	if got := g.Outcome().String(); got != "Game Over! Your final score is: 0" {
		t.Errorf("Outcome = %q", got)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("ended screen missing GAME OVER")
	}

	press(g, core.ActionRestart)
	if g.State().Status != core.StatusInProgress {
		t.Errorf("status after restart = %v, want in_progress", g.State().Status)
	}
}

func TestBrokenConfigBlocksStart(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("/nonexistent/mathdrill.yaml")
	defer SetConfigPath("")

	g := New()
	g.Reset(core.DefaultConfig())
	press(g, core.ActionConfirm)

	if g.State().Status != core.StatusNotStarted {
		t.Errorf("status = %v, want not_started", g.State().Status)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Config error") {
		t.Error("expected the config error to be rendered")
	}
}

func TestEasyPresetAddsLives(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(core.DefaultConfig())
	press(g, core.ActionConfirm)
	if lives := g.Session().Snapshot().Lives; lives != 5 {
		t.Errorf("lives = %d, want 5", lives)
	}
}
