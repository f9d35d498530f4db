package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolateHome points the user config lookup at an empty directory.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolateHome(t)

	math, err := LoadMathDrill("")
	if err != nil {
		t.Fatalf("LoadMathDrill() failed: %v", err)
	}
	if !reflect.DeepEqual(math, DefaultMathDrillConfig()) {
		t.Errorf("mathdrill yaml = %+v, expected %+v", math, DefaultMathDrillConfig())
	}

	binary, err := LoadBinaryBlitz("")
	if err != nil {
		t.Fatalf("LoadBinaryBlitz() failed: %v", err)
	}
	if !reflect.DeepEqual(binary, DefaultBinaryBlitzConfig()) {
		t.Errorf("binaryblitz yaml = %+v, expected %+v", binary, DefaultBinaryBlitzConfig())
	}

	memory, err := LoadMemoryMatch("")
	if err != nil {
		t.Fatalf("LoadMemoryMatch() failed: %v", err)
	}
	if !reflect.DeepEqual(memory, DefaultMemoryMatchConfig()) {
		t.Errorf("memorymatch yaml = %+v, expected %+v", memory, DefaultMemoryMatchConfig())
	}

	solar, err := LoadSolarSystem("")
	if err != nil {
		t.Fatalf("LoadSolarSystem() failed: %v", err)
	}
	if !reflect.DeepEqual(solar, DefaultSolarSystemConfig()) {
		t.Errorf("solarsystem yaml = %+v, expected %+v", solar, DefaultSolarSystemConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	yaml := `
words: [CAT, DOG]
scoring:
  base_score: 50
timing:
  match_delay_ms: 100
  mismatch_delay_ms: 200
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMemoryMatch(path)
	if err != nil {
		t.Fatalf("LoadMemoryMatch(%s) failed: %v", path, err)
	}
	if len(cfg.Words) != 2 || cfg.Words[0] != "CAT" {
		t.Errorf("Words = %v, expected [CAT DOG]", cfg.Words)
	}
	if cfg.Scoring.BaseScore != 50 {
		t.Errorf("BaseScore = %d, expected 50", cfg.Scoring.BaseScore)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadMathDrill(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "duplicate words",
			yaml:  "words: [A, A]\n",
			field: "words",
		},
		{
			name:  "empty words",
			yaml:  "words: []\n",
			field: "words",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadMemoryMatch(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "invalid config") {
				t.Errorf("error = %v, expected invalid config", err)
			}
		})
	}
}

func TestLoadRejectsTooManyOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.yaml")
	yaml := "gameplay:\n  lives: 3\n  points_per_correct: 10\n  option_count: 11\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadBinaryBlitz(path); err == nil {
		t.Fatal("option_count above the level-1 range should be rejected")
	}
}

func TestUserConfigOverridesEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".eduarcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "gameplay:\n  lives: 7\n  points_per_correct: 5\n"
	if err := os.WriteFile(filepath.Join(dir, "mathdrill.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMathDrill("")
	if err != nil {
		t.Fatalf("LoadMathDrill() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Gameplay.PointsPerCorrect != 5 {
		t.Errorf("user config not applied: %+v", cfg.Gameplay)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}

	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestApplyPresets(t *testing.T) {
	math := DefaultMathDrillConfig()
	ApplyMathDrillPreset(&math, DifficultyEasy)
	if math.Gameplay.Lives != 5 {
		t.Errorf("easy lives = %d, expected 5", math.Gameplay.Lives)
	}

	binary := DefaultBinaryBlitzConfig()
	ApplyBinaryBlitzPreset(&binary, DifficultyHard)
	if binary.Gameplay.Lives != 2 {
		t.Errorf("hard lives = %d, expected 2", binary.Gameplay.Lives)
	}

	fixed := DefaultBinaryBlitzConfig()
	ApplyBinaryBlitzPreset(&fixed, DifficultyFixed)
	if fixed.Gameplay.LevelUpEvery != 0 {
		t.Error("fixed preset should disable level progression")
	}

	memory := DefaultMemoryMatchConfig()
	ApplyMemoryMatchPreset(&memory, DifficultyHard)
	if memory.Timing.MismatchDelayMs != 500 {
		t.Errorf("hard mismatch delay = %d, expected 500", memory.Timing.MismatchDelayMs)
	}

	if LivesForPreset(1, DifficultyHard) != 1 {
		t.Error("hard preset must never drop lives to zero")
	}
}
