// Package tui provides the Bubble Tea integration for the learning arcade.
// It runs the terminal loop, maps keys to game actions, records finished
// rounds and acts as the navigation trigger between the menu and the games.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eduarcade/internal/core"
)

// TickMsg drives one fixed game step. Game delays are counted in these.
type TickMsg time.Time

// tickInterval is the wall-clock length of one step at tickRate steps per
// second, falling back to the default rate for unset configs.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
