package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eduarcade/internal/platform/tui"
	"github.com/vovakirdan/eduarcade/internal/registry"
	"github.com/vovakirdan/eduarcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresMine  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show top scores",
	Long: `Display the best rounds for a game. Scored games are ranked by points,
Solar System by the fewest tries in a completed round.
Without a game, opens the interactive scoreboard.

Examples:
  eduarcade scores
  eduarcade scores mathdrill
  eduarcade scores memorymatch --limit 3
  eduarcade scores solarsystem --mine
  eduarcade scores binaryblitz --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded result for the game")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show rounds by the signed-in student")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a game")
		}
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, "", signedInStudent(store))
		return err
	}

	info, ok := registry.Info(args[0])
	if !ok {
		return fmt.Errorf("unknown game %q, run 'eduarcade list' to see available games", args[0])
	}
	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(info.ID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all results for %s.\n", info.Title)
		return nil
	}

	player := signedInStudent(store)
	rounds, err := store.Board(storage.BoardQuery{
		GameID:     info.ID,
		Player:     player,
		Mine:       flagScoresMine,
		ByAttempts: !info.Scored,
		Limit:      flagScoresLimit,
	})
	if err != nil {
		return err
	}

	heading := "Top Scores"
	if !info.Scored {
		heading = "Fewest Tries"
	}
	fmt.Fprintf(out, "%s - %s\n", heading, info.Title)
	if flagScoresMine {
		fmt.Fprintf(out, "Rounds by %s\n", playerName(player))
	}
	fmt.Fprintln(out)

	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'eduarcade play %s' to get on the board!\n", info.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-9s  %-16s  %s\n", "Rank", "Score", "Tries", "Result", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-9s  %-16s  %s\n", "----", "-----", "-----", "------", "------", "----")
	for i, r := range rounds {
		score := "-"
		if info.Scored {
			score = strconv.Itoa(r.Score)
		}
		result := "ended"
		if r.Completed {
			result = "completed"
		}
		fmt.Fprintf(out, "  %-4d  %-6s  %-5d  %-9s  %-16s  %s\n",
			i+1, score, r.Attempts, result, playerName(r.Player), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(info.ID)
	if flagScoresMine {
		stats, err = store.PlayerStats(info.ID, player)
	}
	if err != nil {
		return nil
	}
	fmt.Fprintln(out)
	if info.Scored {
		fmt.Fprintf(out, "Best: %d\n", stats.HighScore)
	} else if stats.BestTries > 0 {
		fmt.Fprintf(out, "Fewest tries: %d\n", stats.BestTries)
	}
	return nil
}

func playerName(name string) string {
	if name == "" {
		return "guest"
	}
	return name
}
