package binaryblitz

import (
	"strings"
	"testing"

	"github.com/vovakirdan/eduarcade/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func indexOf(options []string, want string) int {
	for i, o := range options {
		if o == want {
			return i
		}
	}
	return -1
}

func TestCursorSelectsAnswer(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	c := g.Session().Snapshot().Challenge
	target := indexOf(c.Options, c.Answer)
	for g.cursor != target {
		press(g, core.ActionRight)
	}
	press(g, core.ActionConfirm)

	if g.State().Score != 10 {
		t.Errorf("Score = %d, want 10", g.State().Score)
	}
}

func TestNumberKeySelects(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	c := g.Session().Snapshot().Challenge
	idx := indexOf(c.Options, c.Answer)

	in := core.NewInputFrame()
	in.Type(rune('1' + idx))
	g.Step(in)

	if g.State().Score != 10 {
		t.Errorf("Score = %d, want 10", g.State().Score)
	}
}

func TestCursorWrapsGrid(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	press(g, core.ActionLeft)
	if g.cursor != 3 {
		t.Errorf("cursor = %d, want 3", g.cursor)
	}
	press(g, core.ActionDown)
	if g.cursor != 1 {
		t.Errorf("cursor = %d, want 1", g.cursor)
	}
}

func TestRenderShowsTargetAndOptions(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	c := g.Session().Snapshot().Challenge
	for _, o := range c.Options {
		if !strings.Contains(out, o) {
			t.Errorf("option %q not rendered", o)
		}
	}
	if !strings.Contains(out, "Level 1") {
		t.Error("level not rendered")
	}
}

func TestBackLeavesWithScore(t *testing.T) {
	g := newTestGame(t)
	res := press(g, core.ActionBack)
	if res.Nav == nil || res.Nav.Dest != core.DestLearningHub {
		t.Fatalf("Nav = %+v, want learning hub", res.Nav)
	}
	if res.Nav.Payload["score"] != 0 {
		t.Errorf("payload score = %v", res.Nav.Payload["score"])
	}
}
