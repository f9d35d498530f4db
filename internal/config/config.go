// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the learning arcade.
package config

// MathDrillConfig contains all configuration for the arithmetic drill.
type MathDrillConfig struct {
	Gameplay MathDrillGameplay `yaml:"gameplay" validate:"required"`
	Timing   MathDrillTiming   `yaml:"timing"`
}

// MathDrillGameplay defines scoring and lives for the arithmetic drill.
type MathDrillGameplay struct {
	Lives            int `yaml:"lives" validate:"min=1,max=99"`
	PointsPerCorrect int `yaml:"points_per_correct" validate:"min=1"`
}

// MathDrillTiming defines display delays for the arithmetic drill.
type MathDrillTiming struct {
	NextQuestionMs int `yaml:"next_question_ms" validate:"min=0,max=10000"`
}

// BinaryBlitzConfig contains all configuration for the binary conversion quiz.
type BinaryBlitzConfig struct {
	Gameplay BinaryBlitzGameplay `yaml:"gameplay" validate:"required"`
}

// BinaryBlitzGameplay defines scoring, lives and level progression.
type BinaryBlitzGameplay struct {
	Lives            int `yaml:"lives" validate:"min=1,max=99"`
	PointsPerCorrect int `yaml:"points_per_correct" validate:"min=1"`
	// OptionCount is the number of binary strings offered per question.
	// The draw range at level 1 holds ten values, so more than ten can never fill.
	OptionCount int `yaml:"option_count" validate:"min=2,max=10"`
	// LevelUpEvery is the score period that triggers a level up; 0 disables levels.
	LevelUpEvery int `yaml:"level_up_every" validate:"min=0"`
}

// MemoryMatchConfig contains all configuration for the card matching game.
type MemoryMatchConfig struct {
	Words   []string           `yaml:"words" validate:"min=1,max=18,unique,dive,required"`
	Scoring MemoryMatchScoring `yaml:"scoring"`
	Timing  MemoryMatchTiming  `yaml:"timing"`
}

// MemoryMatchScoring defines how the final score is derived from moves.
type MemoryMatchScoring struct {
	BaseScore int `yaml:"base_score" validate:"min=0"`
}

// MemoryMatchTiming defines how long flipped cards stay visible.
type MemoryMatchTiming struct {
	MatchDelayMs    int `yaml:"match_delay_ms" validate:"min=0,max=10000"`
	MismatchDelayMs int `yaml:"mismatch_delay_ms" validate:"min=0,max=10000"`
}

// SolarSystemConfig contains all configuration for the planet pairing game.
type SolarSystemConfig struct {
	Planets []Planet          `yaml:"planets" validate:"dive"`
	Timing  SolarSystemTiming `yaml:"timing"`
}

// Planet is one item/description pair.
type Planet struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Color       string `yaml:"color"`
}

// SolarSystemTiming defines how long feedback messages stay on screen.
type SolarSystemTiming struct {
	CorrectMessageMs int `yaml:"correct_message_ms" validate:"min=0,max=10000"`
	WrongMessageMs   int `yaml:"wrong_message_ms" validate:"min=0,max=10000"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// LivesForPreset adjusts a base life count for a preset.
func LivesForPreset(base int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return base + 2
	case DifficultyHard:
		if base > 1 {
			return base - 1
		}
	}
	return base
}

// ApplyMathDrillPreset modifies the config based on a difficulty preset.
func ApplyMathDrillPreset(cfg *MathDrillConfig, preset DifficultyPreset) {
	cfg.Gameplay.Lives = LivesForPreset(cfg.Gameplay.Lives, preset)
}

// ApplyBinaryBlitzPreset modifies the config based on a difficulty preset.
// The fixed preset keeps every question at level 1.
func ApplyBinaryBlitzPreset(cfg *BinaryBlitzConfig, preset DifficultyPreset) {
	cfg.Gameplay.Lives = LivesForPreset(cfg.Gameplay.Lives, preset)
	if preset == DifficultyFixed {
		cfg.Gameplay.LevelUpEvery = 0
	}
}

// ApplyMemoryMatchPreset modifies the config based on a difficulty preset.
// Harder presets shorten how long a mismatched pair stays visible.
func ApplyMemoryMatchPreset(cfg *MemoryMatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.MismatchDelayMs *= 2
	case DifficultyHard:
		cfg.Timing.MismatchDelayMs /= 2
	}
}
