package registry

import (
	"testing"

	"github.com/vovakirdan/eduarcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Outcome() core.Outcome                { return core.Outcome{GameID: g.id} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist")
	}
	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID = %q", g.ID())
	}

	info, ok := Info("stub_a")
	if !ok || info.Title != "Stub stub_a" {
		t.Errorf("Info = %+v, %v", info, ok)
	}
	if TitleOf("stub_a") != "Stub stub_a" {
		t.Errorf("TitleOf = %q", TitleOf("stub_a"))
	}
}

type unscoredGame struct{ stubGame }

func (unscoredGame) KeepsScore() bool { return false }

func TestInfoScored(t *testing.T) {
	Register("stub_scored", func() Game { return &stubGame{id: "stub_scored"} })
	Register("stub_unscored", func() Game { return &unscoredGame{stubGame{id: "stub_unscored"}} })

	if info, _ := Info("stub_scored"); !info.Scored {
		t.Error("games without KeepsScore should be scored")
	}
	if info, _ := Info("stub_unscored"); info.Scored {
		t.Error("KeepsScore() = false should mark the game unscored")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if TitleOf("no_such_game") != "no_such_game" {
		t.Error("TitleOf should fall back to the id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
