package core

import "fmt"

// Outcome is the terminal result of a finished round, formatted for display.
type Outcome struct {
	GameID    string
	Title     string
	Score     int
	Attempts  int  // Moves, wrong answers or match attempts, depending on the game
	Completed bool // True when the round was won rather than lost
	Summary   string
}

// String renders the outcome as a single display line.
func (o Outcome) String() string {
	if o.Summary != "" {
		return o.Summary
	}
	if o.Completed {
		return fmt.Sprintf("Completed! Your score is: %d", o.Score)
	}
	return fmt.Sprintf("Game Over! Your final score is: %d", o.Score)
}
