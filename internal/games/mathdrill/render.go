package mathdrill

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/eduarcade/internal/core"
)

const (
	boxW = 36
	boxH = 5
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
		g.renderEnded(dst, snap)
	}
}

func (g *Game) renderIntro(dst *core.Screen) {
	y := dst.Height()/2 - 2
	if g.loadErr != nil {
		dst.DrawTextCenteredColor(y, "Config error", core.ColorBrightRed)
		dst.DrawTextCentered(y+1, g.loadErr.Error())
		dst.DrawTextCenteredColor(y+3, "B: Back", core.ColorGray)
		return
	}
	dst.DrawTextCentered(y, "Solve as many problems as you can.")
	dst.DrawTextCentered(y+1, fmt.Sprintf("You have %d lives. Each correct answer scores %d.",
		g.cfg.Gameplay.Lives, g.cfg.Gameplay.PointsPerCorrect))
	dst.DrawTextCenteredColor(y+3, "Press ENTER to start", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(y+4, "B: Back", core.ColorGray)
}

func (g *Game) renderPlay(dst *core.Screen, snap Snapshot) {
	w := dst.Width()

	dst.DrawText(1, 1, fmt.Sprintf("Score: %d", snap.Score))
	lives := fmt.Sprintf("Lives: %s", strings.Repeat("♥", snap.Lives))
	dst.DrawTextColor(w-len([]rune(lives))-1, 1, lives, core.ColorRed)

	box := core.NewRect((w-boxW)/2, 4, boxW, boxH)
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextInBox(box, snap.Challenge.Question, core.ColorWhite)

	answerY := box.Bottom() + 1
	prompt := "> " + string(g.answer)
	if !snap.PendingNext {
		prompt += "_"
	}
	dst.DrawTextCentered(answerY, prompt)

	switch snap.Message {
	case MessageCorrect:
		dst.DrawTextCenteredColor(answerY+2, snap.Message, core.ColorBrightGreen)
	case MessageWrong:
		dst.DrawTextCenteredColor(answerY+2, snap.Message, core.ColorBrightRed)
	}

	dst.DrawTextCenteredColor(dst.Height()-1, "0-9: Type  ENTER: Submit  TAB: Next question  R: Restart  B: Back", core.ColorGray)
}

func (g *Game) renderEnded(dst *core.Screen, snap Snapshot) {
	y := dst.Height()/2 - 2
	dst.DrawTextCenteredColor(y, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, g.Outcome().String())
	dst.DrawTextCentered(y+2, fmt.Sprintf("Correct: %d  Wrong: %d", snap.Correct, snap.Wrong))
	dst.DrawTextCenteredColor(y+4, "R: Play again  B: Back", core.ColorGray)
}
