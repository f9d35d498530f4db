package solarsystem

import (
	"fmt"

	"github.com/vovakirdan/eduarcade/internal/core"
)

const (
	itemColW = 16
	listY    = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCenteredColor(0, gameTitle, core.ColorBrightCyan)

	if g.startErr != nil {
		y := dst.Height() / 2
		dst.DrawTextCenteredColor(y-1, "Cannot start", core.ColorBrightRed)
		dst.DrawTextCentered(y, g.startErr.Error())
		dst.DrawTextCenteredColor(y+2, "B: Back", core.ColorGray)
		return
	}

	snap := g.session.Snapshot()
	dst.DrawTextCentered(1, "Drag each planet onto its description.")

	for i, it := range snap.Items {
		y := listY + i
		marker := "  "
		if g.held == "" && i == g.itemCursor {
			marker = "> "
		}
		color, _ := core.ParseColor(it.Color)
		switch {
		case it.Matched:
			color = core.ColorGray
		case it.Name == g.held:
			marker = "* "
			color = core.ColorBrightYellow
		}
		dst.DrawText(1, y, marker)
		dst.DrawTextColor(3, y, "● "+it.Name, color)
	}

	descX := itemColW + 2
	descW := dst.Width() - descX - 1
	for i, slot := range snap.Slots {
		y := listY + i
		text := slot.Description
		color := core.ColorWhite
		if slot.Matched {
			text = fmt.Sprintf("✓ %s: %s", slot.Name, slot.Description)
			color = core.ColorBrightGreen
		}
		if r := []rune(text); len(r) > descW-2 {
			text = string(r[:descW-3]) + "…"
		}
		marker := "  "
		if g.held != "" && i == g.slotCursor {
			marker = "> "
		}
		dst.DrawText(descX, y, marker)
		dst.DrawTextColor(descX+2, y, text, color)
	}

	msgY := listY + len(snap.Slots) + 1
	switch snap.Message {
	case MessageCorrect, MessageComplete:
		dst.DrawTextCenteredColor(msgY, snap.Message, core.ColorBrightGreen)
	case MessageWrong:
		dst.DrawTextCenteredColor(msgY, snap.Message, core.ColorBrightRed)
	}

	help := "Up/Down: Move  ENTER: Pick up  R: Restart  B: Back"
	if g.held != "" {
		help = "Up/Down: Move  ENTER: Drop  B: Cancel"
	}
	dst.DrawTextCenteredColor(dst.Height()-1, help, core.ColorGray)
}
