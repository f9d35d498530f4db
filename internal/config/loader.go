package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/eduarcade/internal/validation"
)

// LoadMathDrill loads the arithmetic drill configuration.
// Search order: customPath -> ~/.eduarcade/configs/mathdrill.yaml -> ./configs/mathdrill.yaml -> embedded default
func LoadMathDrill(customPath string) (MathDrillConfig, error) {
	return load(GameMathDrill, customPath, DefaultMathDrillConfig())
}

// LoadBinaryBlitz loads the binary quiz configuration.
// Search order: customPath -> ~/.eduarcade/configs/binaryblitz.yaml -> ./configs/binaryblitz.yaml -> embedded default
func LoadBinaryBlitz(customPath string) (BinaryBlitzConfig, error) {
	return load(GameBinaryBlitz, customPath, DefaultBinaryBlitzConfig())
}

// LoadMemoryMatch loads the card matching configuration.
// Search order: customPath -> ~/.eduarcade/configs/memorymatch.yaml -> ./configs/memorymatch.yaml -> embedded default
func LoadMemoryMatch(customPath string) (MemoryMatchConfig, error) {
	return load(GameMemoryMatch, customPath, DefaultMemoryMatchConfig())
}

// LoadSolarSystem loads the planet pairing configuration.
// Search order: customPath -> ~/.eduarcade/configs/solarsystem.yaml -> ./configs/solarsystem.yaml -> embedded default
func LoadSolarSystem(customPath string) (SolarSystemConfig, error) {
	return load(GameSolarSystem, customPath, DefaultSolarSystemConfig())
}

// load resolves a game's config. An explicit customPath must exist and be
// valid; the implicit locations are skipped when missing or broken.
func load[T any](gameID, customPath string, fallback T) (T, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		cfg, err := readFile[T](customPath)
		if err != nil {
			return fallback, err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := readFile[T](userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := readFile[T](filepath.Join("configs", filename)); err == nil {
		return cfg, nil
	}

	cfg, err := parse[T](GetDefaultYAML(gameID), "embedded "+filename)
	if err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return parse[T](data, path)
}

// parse decodes YAML and validates the result.
func parse[T any](data []byte, source string) (T, error) {
	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := validation.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eduarcade", "configs", filename)
}
