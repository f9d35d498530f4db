package memorymatch

import (
	"fmt"

	"github.com/vovakirdan/eduarcade/internal/core"
)

const (
	cardW   = 12
	cardH   = 3
	cardGap = 1
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	dst.DrawTextCenteredColor(0, gameTitle, core.ColorBrightCyan)

	if snap.Status == core.StatusNotStarted {
		y := dst.Height()/2 - 2
		if err := g.problem(); err != nil {
			dst.DrawTextCenteredColor(y, "Cannot start", core.ColorBrightRed)
			dst.DrawTextCentered(y+1, err.Error())
			dst.DrawTextCenteredColor(y+3, "B: Back", core.ColorGray)
			return
		}
		dst.DrawTextCenteredColor(y, "How to Play", core.ColorWhite)
		dst.DrawTextCentered(y+1, "Match all pairs of words by flipping two cards at a time. Good luck!")
		dst.DrawTextCenteredColor(y+3, "Press ENTER to start", core.ColorBrightYellow)
		dst.DrawTextCenteredColor(y+4, "B: Back", core.ColorGray)
		return
	}

	dst.DrawTextCentered(1, fmt.Sprintf("Moves: %d   Pairs: %d/%d", snap.Moves/2, snap.Matched, snap.Pairs))

	gridW := gridCols*cardW + (gridCols-1)*cardGap
	gridX := (dst.Width() - gridW) / 2
	gridY := 3

	for i, c := range snap.Cards {
		col, row := i%gridCols, i/gridCols
		r := core.NewRect(gridX+col*(cardW+cardGap), gridY+row*cardH, cardW, cardH)

		border := core.ColorGray
		if i == g.cursor && snap.Status == core.StatusInProgress {
			border = core.ColorBrightYellow
		}
		dst.DrawBox(r, border)

		switch {
		case c.Matched:
			dst.DrawTextInBox(r, c.Word, core.ColorBrightGreen)
		case c.FaceUp:
			dst.DrawTextInBox(r, c.Word, core.ColorWhite)
		default:
			dst.DrawTextInBox(r, "?", core.ColorMagenta)
		}
	}

	rows := (len(snap.Cards) + gridCols - 1) / gridCols
	msgY := gridY + rows*cardH + 1
	if snap.Status == core.StatusEnded {
		dst.DrawTextCenteredColor(msgY, snap.Message, core.ColorBrightGreen)
		dst.DrawTextCenteredColor(dst.Height()-1, "R: Play again  B: Back", core.ColorGray)
		return
	}
	dst.DrawTextCenteredColor(dst.Height()-1, "Arrows: Move  ENTER: Flip  R: Restart  B: Back", core.ColorGray)
}

func (g *Game) problem() error {
	if g.loadErr != nil {
		return g.loadErr
	}
	return g.startErr
}
