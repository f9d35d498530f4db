package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/eduarcade/internal/core"
)

func TestRenderScreenKeepsTextAndRows(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "10 + 5", core.ColorBrightYellow)
	s.DrawTextColor(0, 2, "Correct!", core.ColorGreen)

	out := RenderScreen(s)

	if rows := strings.Count(out, "\n") + 1; rows != 3 {
		t.Errorf("rendered %d rows, want 3", rows)
	}
	for _, want := range []string{"10 + 5", "Correct!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain text", got)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{10, 100 * time.Millisecond},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
