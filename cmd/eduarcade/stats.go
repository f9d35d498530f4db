package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eduarcade/internal/registry"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-game statistics",
	Long: `Display rounds played, completions and scores for every game,
followed by the most recent rounds.

Examples:
  eduarcade stats
  eduarcade stats --recent 5`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent rounds to list (0 to hide)")
}

func runStats(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.AllGameStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-20s  %6s  %9s  %5s  %7s  %s\n", "Game", "Played", "Completed", "Best", "Average", "Last played")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Fprintf(out, "  %-20s  %6d  %9s  %5s  %7s  %s\n", g.Title, 0, "-", "-", "-", "never")
			continue
		}
		best, avg := strconv.Itoa(st.HighScore), fmt.Sprintf("%.1f", st.AvgScore)
		if !g.Scored {
			best, avg = "-", "-"
			if st.BestTries > 0 {
				best = fmt.Sprintf("%dt", st.BestTries)
			}
		}
		fmt.Fprintf(out, "  %-20s  %6d  %9d  %5s  %7s  %s\n",
			g.Title, st.GamesCount, st.Completed, best, avg, st.LastPlayed.Format("2006-01-02 15:04"))
	}

	if flagRecent <= 0 {
		return nil
	}
	recent, err := store.RecentResults(flagRecent)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent rounds:")
	for _, r := range recent {
		status := "ended"
		if r.Completed {
			status = "completed"
		}
		fmt.Fprintf(out, "  %s  %-20s  %-12s  score %-4d  tries %-3d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), registry.TitleOf(r.GameID), playerName(r.Player), r.Score, r.Attempts, status)
	}
	return nil
}
