package config

import (
	_ "embed"
)

// Game IDs with a YAML configuration.
const (
	GameMathDrill   = "mathdrill"
	GameBinaryBlitz = "binaryblitz"
	GameMemoryMatch = "memorymatch"
	GameSolarSystem = "solarsystem"
)

//go:embed defaults/mathdrill.yaml
var defaultMathDrillYAML []byte

//go:embed defaults/binaryblitz.yaml
var defaultBinaryBlitzYAML []byte

//go:embed defaults/memorymatch.yaml
var defaultMemoryMatchYAML []byte

//go:embed defaults/solarsystem.yaml
var defaultSolarSystemYAML []byte

// DefaultMathDrillConfig returns the default arithmetic drill configuration.
func DefaultMathDrillConfig() MathDrillConfig {
	return MathDrillConfig{
		Gameplay: MathDrillGameplay{
			Lives:            3,
			PointsPerCorrect: 10,
		},
		Timing: MathDrillTiming{
			NextQuestionMs: 500,
		},
	}
}

// DefaultBinaryBlitzConfig returns the default binary quiz configuration.
func DefaultBinaryBlitzConfig() BinaryBlitzConfig {
	return BinaryBlitzConfig{
		Gameplay: BinaryBlitzGameplay{
			Lives:            3,
			PointsPerCorrect: 10,
			OptionCount:      4,
			LevelUpEvery:     50,
		},
	}
}

// DefaultMemoryMatchConfig returns the default card matching configuration.
func DefaultMemoryMatchConfig() MemoryMatchConfig {
	return MemoryMatchConfig{
		Words: []string{"ODISHA", "GRAMMAR", "PHASER", "CODE", "QUIZ", "LEARN"},
		Scoring: MemoryMatchScoring{
			BaseScore: 100,
		},
		Timing: MemoryMatchTiming{
			MatchDelayMs:    500,
			MismatchDelayMs: 1000,
		},
	}
}

// DefaultSolarSystemConfig returns the default planet pairing configuration.
func DefaultSolarSystemConfig() SolarSystemConfig {
	return SolarSystemConfig{
		Planets: []Planet{
			{Name: "Mercury", Description: "The smallest planet and closest to the Sun.", Color: "gray"},
			{Name: "Venus", Description: "Known for its thick, toxic atmosphere and extreme heat.", Color: "yellow"},
			{Name: "Earth", Description: "Our home planet, known for its oceans and life.", Color: "blue"},
			{Name: "Mars", Description: `The "Red Planet," famous for its reddish appearance.`, Color: "red"},
			{Name: "Jupiter", Description: "The largest planet, a massive gas giant with a Great Red Spot.", Color: "orange"},
			{Name: "Saturn", Description: "Known for its prominent, beautiful system of rings.", Color: "yellow"},
			{Name: "Uranus", Description: `An "ice giant" that rotates on its side.`, Color: "cyan"},
			{Name: "Neptune", Description: "The farthest planet from the Sun, known for its strong winds.", Color: "blue"},
		},
		Timing: SolarSystemTiming{
			CorrectMessageMs: 2000,
			WrongMessageMs:   500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case GameMathDrill:
		return defaultMathDrillYAML
	case GameBinaryBlitz:
		return defaultBinaryBlitzYAML
	case GameMemoryMatch:
		return defaultMemoryMatchYAML
	case GameSolarSystem:
		return defaultSolarSystemYAML
	default:
		return nil
	}
}
