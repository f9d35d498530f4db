package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/games/binaryblitz"
	"github.com/vovakirdan/eduarcade/internal/games/mathdrill"
	"github.com/vovakirdan/eduarcade/internal/games/memorymatch"
	"github.com/vovakirdan/eduarcade/internal/games/solarsystem"
	"github.com/vovakirdan/eduarcade/internal/platform/tui"
	"github.com/vovakirdan/eduarcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move the cursor
  0-9, -       - Type an answer (Math Master)
  Enter/Space  - Start, submit, flip, pick up or drop
  Tab          - Next question (Math Master)
  Backspace    - Erase the last digit
  R            - Restart
  B/Esc        - Back to the learning hub
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options:
  easy   - Two extra lives
  normal - Default lives and level progression
  hard   - One life less
  fixed  - No level progression (Binary Blitz)

Examples:
  eduarcade play mathdrill
  eduarcade play binaryblitz --difficulty easy
  eduarcade play memorymatch --config ./my-words.yaml
  eduarcade play solarsystem --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// setConfigPath points the chosen game at a custom YAML file.
func setConfigPath(gameID, path string) {
	switch gameID {
	case config.GameMathDrill:
		mathdrill.SetConfigPath(path)
	case config.GameBinaryBlitz:
		binaryblitz.SetConfigPath(path)
	case config.GameMemoryMatch:
		memorymatch.SetConfigPath(path)
	case config.GameSolarSystem:
		solarsystem.SetConfigPath(path)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'eduarcade list' to see available games", gameID)
	}
	setConfigPath(gameID, flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}

	outcome, err := tui.Run(game, store, runtimeConfig(), tui.Options{
		Player: signedInStudent(store),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if outcome != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", outcome.Title, outcome)
	}
	return nil
}
