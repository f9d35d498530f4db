package binaryblitz

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/eduarcade/internal/core"
)

const (
	optionW   = 16
	optionH   = 3
	optionGap = 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	dst.DrawTextCenteredColor(0, gameTitle, core.ColorBrightCyan)

	switch snap.Status {
	case core.StatusNotStarted:
		g.renderIntro(dst)
	case core.StatusInProgress:
		g.renderPlay(dst, snap)
	case core.StatusEnded:
		y := dst.Height()/2 - 2
		dst.DrawTextCenteredColor(y, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(y+1, g.Outcome().String())
		dst.DrawTextCenteredColor(y+3, "R: Play again  B: Back", core.ColorGray)
	}
}

func (g *Game) renderIntro(dst *core.Screen) {
	y := dst.Height()/2 - 3
	if g.loadErr != nil {
		dst.DrawTextCenteredColor(y, "Config error", core.ColorBrightRed)
		dst.DrawTextCentered(y+1, g.loadErr.Error())
		dst.DrawTextCenteredColor(y+3, "B: Back", core.ColorGray)
		return
	}
	dst.DrawTextCenteredColor(y, "How to Play", core.ColorWhite)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Each correct answer gives you %d points.", g.cfg.Gameplay.PointsPerCorrect))
	dst.DrawTextCentered(y+3, fmt.Sprintf("After %d wrong answers, the game is over.", g.cfg.Gameplay.Lives))
	dst.DrawTextCenteredColor(y+5, "Press ENTER to play", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(y+6, "B: Back", core.ColorGray)
}

func (g *Game) renderPlay(dst *core.Screen, snap Snapshot) {
	w := dst.Width()

	dst.DrawText(1, 1, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCentered(1, fmt.Sprintf("Level %d", snap.Level))
	lives := "Lives: " + strings.Repeat("♥", snap.Lives)
	dst.DrawTextColor(w-len([]rune(lives))-1, 1, lives, core.ColorRed)

	target := core.NewRect((w-20)/2, 3, 20, 3)
	dst.DrawBox(target, core.ColorCyan)
	dst.DrawTextInBox(target, fmt.Sprintf("%d", snap.Challenge.Target), core.ColorBrightYellow)
	dst.DrawTextCentered(target.Bottom(), "Choose the correct binary code:")

	gridW := gridCols*optionW + (gridCols-1)*optionGap
	gridX := (w - gridW) / 2
	gridY := target.Bottom() + 2

	for i, opt := range snap.Challenge.Options {
		col, row := i%gridCols, i/gridCols
		r := core.NewRect(gridX+col*(optionW+optionGap), gridY+row*optionH, optionW, optionH)
		color := core.ColorGray
		if i == g.cursor {
			color = core.ColorBrightYellow
		}
		dst.DrawBox(r, color)
		dst.DrawTextInBox(r, fmt.Sprintf("%d) %s", i+1, opt), color)
	}

	rows := (len(snap.Challenge.Options) + gridCols - 1) / gridCols
	msgY := gridY + rows*optionH + 1
	switch snap.Message {
	case MessageCorrect:
		dst.DrawTextCenteredColor(msgY, snap.Message, core.ColorBrightGreen)
	case MessageWrong:
		dst.DrawTextCenteredColor(msgY, snap.Message, core.ColorBrightRed)
	}

	dst.DrawTextCenteredColor(dst.Height()-1, "Arrows: Move  ENTER/1-9: Choose  R: Restart  B: Back", core.ColorGray)
}
