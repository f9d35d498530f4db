package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Type('4', '2')

	if !f.Has(ActionConfirm) {
		t.Error("Has(Confirm) should be true after Set")
	}
	if f.Has(ActionBack) {
		t.Error("Has(Back) should be false")
	}
	if string(f.Runes) != "42" {
		t.Errorf("Runes = %q, expected 42", string(f.Runes))
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionConfirm) || len(f.Runes) != 0 {
		t.Error("Clear should reset actions and runes")
	}
	if !clone.Has(ActionConfirm) || string(clone.Runes) != "42" {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionSkip)
	if !f.Has(ActionSkip) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionSkip.String() != "Skip" {
		t.Errorf("ActionSkip.String() = %q", ActionSkip.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}

func TestOutcomeString(t *testing.T) {
	lost := Outcome{Score: 30}
	if lost.String() != "Game Over! Your final score is: 30" {
		t.Errorf("lost outcome = %q", lost.String())
	}

	won := Outcome{Score: 94, Completed: true}
	if won.String() != "Completed! Your score is: 94" {
		t.Errorf("won outcome = %q", won.String())
	}

	custom := Outcome{Summary: "done"}
	if custom.String() != "done" {
		t.Errorf("summary should override, got %q", custom.String())
	}
}

func TestNavRequestWith(t *testing.T) {
	req := NewNavRequest(DestLearningHub).With("score", 40)
	if req.Dest != DestLearningHub {
		t.Errorf("Dest = %s", req.Dest)
	}
	if req.Payload["score"] != 40 {
		t.Errorf("Payload = %v", req.Payload)
	}

	var zero NavRequest
	zero.With("k", "v")
	if zero.Payload["k"] != "v" {
		t.Error("With should allocate payload on zero request")
	}
}
