// eduarcade is a terminal learning arcade with four practice games.
//
// Usage:
//
//	eduarcade list              - List available games
//	eduarcade play <game>       - Play a game
//	eduarcade menu              - Start the learning hub menu
//	eduarcade serve             - Start SSH server for remote play
//	eduarcade scores [game]     - Show top scores
//	eduarcade stats             - Show per-game statistics
//	eduarcade signup            - Create a student or teacher account
//	eduarcade login             - Sign in to an existing account
//	eduarcade logout            - Sign out
//	eduarcade whoami            - Show who is signed in
//	eduarcade quizzes           - List subject and teacher quizzes
//	eduarcade quiz <subject|n>  - Take a quiz
//	eduarcade create-quiz       - Write a quiz (teachers)
//	eduarcade delete-quiz <n>   - Delete a teacher quiz
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible questions
//	--db <path>           - Set database path (default: ~/.eduarcade/eduarcade.db)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/games/binaryblitz"
	"github.com/vovakirdan/eduarcade/internal/games/mathdrill"
	"github.com/vovakirdan/eduarcade/internal/games/memorymatch"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eduarcade",
	Short: "Learning Arcade - practice maths, binary, words and planets in your terminal",
	Long: `Learning Arcade is a set of small practice games for the terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive learning hub
  serve    - Start SSH server for remote play
  scores   - View top scores
  stats    - View per-game statistics
  signup   - Create an account
  login    - Sign in
  logout   - Sign out
  whoami   - Show who is signed in
  quizzes  - List subject and teacher quizzes
  quiz     - Take a quiz
  create-quiz, delete-quiz - Manage teacher quizzes

Examples:
  eduarcade list
  eduarcade play mathdrill
  eduarcade menu --difficulty easy
  eduarcade serve --ssh :2222
  eduarcade scores binaryblitz
  eduarcade quiz science`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.eduarcade/eduarcade.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.eduarcade/eduarcade.log", "Log file for interactive commands")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(quizzesCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(createQuizCmd)
	rootCmd.AddCommand(deleteQuizCmd)
}

// applyGlobalFlags validates shared flags and hands the difficulty preset to
// every game that supports one.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	mathdrill.SetDifficultyPreset(flagDifficulty)
	binaryblitz.SetDifficultyPreset(flagDifficulty)
	memorymatch.SetDifficultyPreset(flagDifficulty)
	return nil
}
